package token

// Kind represents the category of a token. The set is closed.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the attribute value.
	EOF

	// Ident represents an identifier token (including verbatim @ident).
	Ident
	// KwIdent is a reserved keyword promoted to an identifier.
	KwIdent
	// Number represents a numeric literal; it is never identifier-eligible.
	Number

	Dot       // .
	Comma     // ,
	Colon     // :
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Lt        // <
	Gt        // >
	Question  // ?
	Star      // *
	Amp       // &
	Plus      // +
	Minus     // -
	Slash     // /
	Percent   // %
	Assign    // =
	Bang      // !
	Tilde     // ~
	Caret     // ^
	Pipe      // |
	At        // @
	Hash      // #
	Quote     // '
	DQuote    // "
	Backslash // \
	Backtick  // `
	Dollar    // $

	// Unknown is any other character. It is punctuation for recovery purposes.
	Unknown
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwIdent:   "KwIdent",
	Number:    "Number",
	Dot:       "Dot",
	Comma:     "Comma",
	Colon:     "Colon",
	Semicolon: "Semicolon",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Lt:        "Lt",
	Gt:        "Gt",
	Question:  "Question",
	Star:      "Star",
	Amp:       "Amp",
	Plus:      "Plus",
	Minus:     "Minus",
	Slash:     "Slash",
	Percent:   "Percent",
	Assign:    "Assign",
	Bang:      "Bang",
	Tilde:     "Tilde",
	Caret:     "Caret",
	Pipe:      "Pipe",
	At:        "At",
	Hash:      "Hash",
	Quote:     "Quote",
	DQuote:    "DQuote",
	Backslash: "Backslash",
	Backtick:  "Backtick",
	Dollar:    "Dollar",
	Unknown:   "Unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// punctByByte maps single-byte punctuation to its kind.
var punctByByte = map[byte]Kind{
	'.': Dot, ',': Comma, ':': Colon, ';': Semicolon,
	'(': LParen, ')': RParen, '{': LBrace, '}': RBrace, '[': LBracket, ']': RBracket,
	'<': Lt, '>': Gt, '?': Question, '*': Star, '&': Amp, '+': Plus, '-': Minus,
	'/': Slash, '%': Percent, '=': Assign, '!': Bang, '~': Tilde, '^': Caret,
	'|': Pipe, '@': At, '#': Hash, '\'': Quote, '"': DQuote, '\\': Backslash,
	'`': Backtick, '$': Dollar,
}

// LookupPunct returns the punctuation kind for b, or Unknown.
func LookupPunct(b byte) Kind {
	if k, ok := punctByByte[b]; ok {
		return k
	}
	return Unknown
}
