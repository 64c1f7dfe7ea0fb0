package parser

import "fmt"

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

func (s Span) IsPoint() bool {
	return s.Start == s.End
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenText
	TokenTagName
	TokenTagEnd
	TokenOpeningTagEnd
	TokenAttributeName
	TokenAttributeValue
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:            "EOF",
	TokenText:           "Text",
	TokenTagName:        "TagName",
	TokenTagEnd:         "TagEnd",
	TokenOpeningTagEnd:  "OpeningTagEnd",
	TokenAttributeName:  "AttributeName",
	TokenAttributeValue: "AttributeValue",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Span, t.Kind, t.Literal)
}
