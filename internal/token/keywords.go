package token

// Keyword identifies a reserved word of the host language.
// Inside a doc-comment name attribute a keyword never appears as its own
// token kind: the lexer promotes it to KwIdent and records which keyword it was.
type Keyword uint8

const (
	// KwNone marks a token that is not keyword-shaped.
	KwNone Keyword = iota

	KwAbstract   // abstract
	KwAs         // as
	KwBase       // base
	KwBool       // bool
	KwBreak      // break
	KwByte       // byte
	KwCase       // case
	KwCatch      // catch
	KwChar       // char
	KwChecked    // checked
	KwClass      // class
	KwConst      // const
	KwContinue   // continue
	KwDecimal    // decimal
	KwDefault    // default
	KwDelegate   // delegate
	KwDo         // do
	KwDouble     // double
	KwElse       // else
	KwEnum       // enum
	KwEvent      // event
	KwExplicit   // explicit
	KwExtern     // extern
	KwFalse      // false
	KwFinally    // finally
	KwFixed      // fixed
	KwFloat      // float
	KwFor        // for
	KwForeach    // foreach
	KwGoto       // goto
	KwIf         // if
	KwImplicit   // implicit
	KwIn         // in
	KwInt        // int
	KwInterface  // interface
	KwInternal   // internal
	KwIs         // is
	KwLock       // lock
	KwLong       // long
	KwNamespace  // namespace
	KwNew        // new
	KwNull       // null
	KwObject     // object
	KwOperator   // operator
	KwOut        // out
	KwOverride   // override
	KwParams     // params
	KwPrivate    // private
	KwProtected  // protected
	KwPublic     // public
	KwReadonly   // readonly
	KwRef        // ref
	KwReturn     // return
	KwSbyte      // sbyte
	KwSealed     // sealed
	KwShort      // short
	KwSizeof     // sizeof
	KwStackalloc // stackalloc
	KwStatic     // static
	KwString     // string
	KwStruct     // struct
	KwSwitch     // switch
	KwThis       // this
	KwThrow      // throw
	KwTrue       // true
	KwTry        // try
	KwTypeof     // typeof
	KwUint       // uint
	KwUlong      // ulong
	KwUnchecked  // unchecked
	KwUnsafe     // unsafe
	KwUshort     // ushort
	KwUsing      // using
	KwVirtual    // virtual
	KwVoid       // void
	KwVolatile   // volatile
	KwWhile      // while
	KwArglist    // __arglist
	KwMakeref    // __makeref
	KwReftype    // __reftype
	KwRefvalue   // __refvalue
)

var keywordNames = [...]string{
	KwNone:       "",
	KwAbstract:   "abstract",
	KwAs:         "as",
	KwBase:       "base",
	KwBool:       "bool",
	KwBreak:      "break",
	KwByte:       "byte",
	KwCase:       "case",
	KwCatch:      "catch",
	KwChar:       "char",
	KwChecked:    "checked",
	KwClass:      "class",
	KwConst:      "const",
	KwContinue:   "continue",
	KwDecimal:    "decimal",
	KwDefault:    "default",
	KwDelegate:   "delegate",
	KwDo:         "do",
	KwDouble:     "double",
	KwElse:       "else",
	KwEnum:       "enum",
	KwEvent:      "event",
	KwExplicit:   "explicit",
	KwExtern:     "extern",
	KwFalse:      "false",
	KwFinally:    "finally",
	KwFixed:      "fixed",
	KwFloat:      "float",
	KwFor:        "for",
	KwForeach:    "foreach",
	KwGoto:       "goto",
	KwIf:         "if",
	KwImplicit:   "implicit",
	KwIn:         "in",
	KwInt:        "int",
	KwInterface:  "interface",
	KwInternal:   "internal",
	KwIs:         "is",
	KwLock:       "lock",
	KwLong:       "long",
	KwNamespace:  "namespace",
	KwNew:        "new",
	KwNull:       "null",
	KwObject:     "object",
	KwOperator:   "operator",
	KwOut:        "out",
	KwOverride:   "override",
	KwParams:     "params",
	KwPrivate:    "private",
	KwProtected:  "protected",
	KwPublic:     "public",
	KwReadonly:   "readonly",
	KwRef:        "ref",
	KwReturn:     "return",
	KwSbyte:      "sbyte",
	KwSealed:     "sealed",
	KwShort:      "short",
	KwSizeof:     "sizeof",
	KwStackalloc: "stackalloc",
	KwStatic:     "static",
	KwString:     "string",
	KwStruct:     "struct",
	KwSwitch:     "switch",
	KwThis:       "this",
	KwThrow:      "throw",
	KwTrue:       "true",
	KwTry:        "try",
	KwTypeof:     "typeof",
	KwUint:       "uint",
	KwUlong:      "ulong",
	KwUnchecked:  "unchecked",
	KwUnsafe:     "unsafe",
	KwUshort:     "ushort",
	KwUsing:      "using",
	KwVirtual:    "virtual",
	KwVoid:       "void",
	KwVolatile:   "volatile",
	KwWhile:      "while",
	KwArglist:    "__arglist",
	KwMakeref:    "__makeref",
	KwReftype:    "__reftype",
	KwRefvalue:   "__refvalue",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for i, name := range keywordNames {
		if name != "" {
			m[name] = Keyword(i)
		}
	}
	return m
}()

// contextualKeywords carry meaning only in specific positions; the lexer
// always emits them as plain Ident.
var contextualKeywords = map[string]struct{}{
	"add": {}, "alias": {}, "and": {}, "args": {}, "ascending": {}, "async": {},
	"await": {}, "by": {}, "descending": {}, "dynamic": {}, "equals": {},
	"field": {}, "file": {}, "from": {}, "get": {}, "global": {}, "group": {},
	"init": {}, "into": {}, "join": {}, "let": {}, "managed": {}, "nameof": {},
	"nint": {}, "not": {}, "notnull": {}, "nuint": {}, "on": {}, "or": {},
	"orderby": {}, "partial": {}, "record": {}, "remove": {}, "required": {},
	"scoped": {}, "select": {}, "set": {}, "unmanaged": {}, "value": {},
	"var": {}, "when": {}, "where": {}, "with": {}, "yield": {},
}

// LookupKeyword reports whether ident is a reserved keyword.
// Ключевые слова регистрозависимые: "Int" и "INT" — обычные идентификаторы.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsContextualKeyword reports whether ident is a contextual keyword.
func IsContextualKeyword(ident string) bool {
	_, ok := contextualKeywords[ident]
	return ok
}

// Keywords returns every reserved keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, 0, len(keywordNames)-1)
	for i := 1; i < len(keywordNames); i++ {
		out = append(out, Keyword(i))
	}
	return out
}

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "Keyword(?)"
}
