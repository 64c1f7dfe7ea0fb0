package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/maheshbansod/html-parser/parser"
)

// elementSymbols builds the nested outline of a forest. Text leaves do not
// appear in the outline.
func elementSymbols(doc *document, nodes []parser.Node) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, node := range nodes {
		element, ok := node.(parser.Element)
		if !ok {
			continue
		}
		symbol := protocol.DocumentSymbol{
			Name:           symbolName(element),
			Kind:           protocol.SymbolKindField,
			Range:          doc.rangeOf(elementSpan(element)),
			SelectionRange: doc.rangeOf(element.TagName.Span),
			Children:       elementSymbols(doc, element.Children),
		}
		if detail := symbolDetail(element); detail != "" {
			symbol.Detail = &detail
		}
		symbols = append(symbols, symbol)
	}
	return symbols
}

func symbolName(element parser.Element) string {
	name := element.Name()
	if id, ok := element.AttributeValue("id"); ok && id != "" {
		name += "#" + id
	}
	if name == "" {
		// clients reject empty symbol names
		name = "<anonymous>"
	}
	return name
}

func symbolDetail(element parser.Element) string {
	class, ok := element.AttributeValue("class")
	if !ok || class == "" {
		return ""
	}
	return "." + strings.Join(strings.Fields(class), " .")
}

// elementSpan is the union of every token span reachable from the element:
// its tag name, attribute values, and children.
func elementSpan(element parser.Element) parser.Span {
	span := element.TagName.Span
	for _, attribute := range element.Attributes {
		span.End = maxPosition(span.End, attribute.Value.Span.End)
	}
	for _, child := range element.Children {
		span.End = maxPosition(span.End, nodeSpan(child).End)
	}
	return span
}

func nodeSpan(node parser.Node) parser.Span {
	switch node := node.(type) {
	case parser.Text:
		return node.Token.Span
	case parser.Element:
		return elementSpan(node)
	}
	return parser.Span{}
}

func maxPosition(a, b parser.Position) parser.Position {
	if a.Before(b) {
		return b
	}
	return a
}
