package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestElementSymbols(t *testing.T) {
	doc := newDocument(`<div id="main" class="wrap page"><span>x</span></div>`)
	symbols := elementSymbols(doc, doc.forest)
	if len(symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(symbols))
	}

	root := symbols[0]
	if root.Name != "div#main" {
		t.Errorf("name = %q, want %q", root.Name, "div#main")
	}
	if root.Detail == nil || *root.Detail != ".wrap .page" {
		t.Errorf("detail = %v, want %q", root.Detail, ".wrap .page")
	}
	if root.Kind != protocol.SymbolKindField {
		t.Errorf("kind = %v, want %v", root.Kind, protocol.SymbolKindField)
	}
	wantSelection := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 1},
		End:   protocol.Position{Line: 0, Character: 4},
	}
	if root.SelectionRange != wantSelection {
		t.Errorf("selection range = %v, want %v", root.SelectionRange, wantSelection)
	}

	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(root.Children))
	}
	child := root.Children[0]
	if child.Name != "span" {
		t.Errorf("child name = %q, want %q", child.Name, "span")
	}
	if child.Detail != nil {
		t.Errorf("child detail = %q, want nil", *child.Detail)
	}
}

func TestElementSymbolsSkipText(t *testing.T) {
	doc := newDocument("hello<b>there</b>")
	symbols := elementSymbols(doc, doc.forest)
	if len(symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(symbols))
	}
	if symbols[0].Name != "b" {
		t.Errorf("name = %q, want %q", symbols[0].Name, "b")
	}
}

func TestElementSymbolsAnonymous(t *testing.T) {
	doc := newDocument("<>")
	symbols := elementSymbols(doc, doc.forest)
	if len(symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(symbols))
	}
	if symbols[0].Name != "<anonymous>" {
		t.Errorf("name = %q, want %q", symbols[0].Name, "<anonymous>")
	}
}

func TestElementSymbolsBaseOffset(t *testing.T) {
	doc := newDocument("\n\n<div></div>")
	symbols := elementSymbols(doc, doc.forest)
	if len(symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(symbols))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 1},
		End:   protocol.Position{Line: 2, Character: 4},
	}
	if got := symbols[0].SelectionRange; got != want {
		t.Errorf("selection range = %v, want %v", got, want)
	}
}
