package lsp

import "github.com/maheshbansod/html-parser/parser"

// elementPath returns the chain of elements whose spans contain pos,
// outermost first. An empty chain means pos falls outside every element.
func elementPath(nodes []parser.Node, pos parser.Position) []parser.Element {
	for _, node := range nodes {
		element, ok := node.(parser.Element)
		if !ok {
			continue
		}
		if !positionInSpan(pos, elementSpan(element)) {
			continue
		}
		return append([]parser.Element{element}, elementPath(element.Children, pos)...)
	}
	return nil
}

func positionInSpan(pos parser.Position, span parser.Span) bool {
	if pos.Before(span.Start) {
		return false
	}
	if span.End.Before(pos) {
		return false
	}
	return true
}
