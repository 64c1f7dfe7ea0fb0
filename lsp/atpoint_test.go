package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maheshbansod/html-parser/parser"
)

func TestElementPath(t *testing.T) {
	doc := newDocument("<a><b>x</b></a>")

	tests := []struct {
		name string
		pos  parser.Position
		want []string
	}{
		{"outer tag name", parser.Position{Line: 0, Column: 1}, []string{"a"}},
		{"inner tag name", parser.Position{Line: 0, Column: 4}, []string{"a", "b"}},
		{"text content", parser.Position{Line: 0, Column: 6}, []string{"a", "b"}},
		{"span end is inside", parser.Position{Line: 0, Column: 7}, []string{"a", "b"}},
		{"before first element", parser.Position{Line: 0, Column: 0}, nil},
		{"inside discarded closing tag", parser.Position{Line: 0, Column: 9}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := elementPath(doc.forest, tt.pos)
			var names []string
			for _, element := range path {
				names = append(names, element.Name())
			}
			if diff := cmp.Diff(tt.want, names); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPositionInSpan(t *testing.T) {
	span := parser.Span{
		Start: parser.Position{Line: 1, Column: 2},
		End:   parser.Position{Line: 3, Column: 4},
	}

	tests := []struct {
		name string
		pos  parser.Position
		want bool
	}{
		{"at start", parser.Position{Line: 1, Column: 2}, true},
		{"at end", parser.Position{Line: 3, Column: 4}, true},
		{"after start on start line", parser.Position{Line: 1, Column: 5}, true},
		{"middle line", parser.Position{Line: 2, Column: 0}, true},
		{"before start column", parser.Position{Line: 1, Column: 1}, false},
		{"before start line", parser.Position{Line: 0, Column: 9}, false},
		{"past end column", parser.Position{Line: 3, Column: 5}, false},
		{"past end line", parser.Position{Line: 4, Column: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := positionInSpan(tt.pos, span); got != tt.want {
				t.Errorf("positionInSpan(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
