package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Синтаксические
	SynInfo              Code = 2000
	SynMissingIdentifier Code = 2102

	// Структура doc-комментария
	DocInfo            Code = 3000
	DocUnterminatedTag Code = 3001
	DocMissingQuote    Code = 3002
	DocMissingEquals   Code = 3003
	DocStrayEndTag     Code = 3004
	DocUnclosedElement Code = 3005

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	SynInfo:              "Syntax information",
	SynMissingIdentifier: "identifier expected",
	DocInfo:              "Doc comment information",
	DocUnterminatedTag:   "unterminated XML tag",
	DocMissingQuote:      "attribute value must be quoted",
	DocMissingEquals:     "expected '=' after attribute name",
	DocStrayEndTag:       "end tag without matching start tag",
	DocUnclosedElement:   "element is not closed",
	IOLoadFileError:      "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
