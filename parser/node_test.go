package parser

import "testing"

func TestElementName(t *testing.T) {
	forest := New("<section></section>").Parse()
	if len(forest) != 1 {
		t.Fatalf("got %d roots, want 1", len(forest))
	}
	element, ok := forest[0].(Element)
	if !ok {
		t.Fatalf("root is %T, want Element", forest[0])
	}
	if got, want := element.Name(), "section"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestElementAttributeValue(t *testing.T) {
	forest := New(`<a href="/home" id=main hidden></a>`).Parse()
	if len(forest) != 1 {
		t.Fatalf("got %d roots, want 1", len(forest))
	}
	element := forest[0].(Element)

	tests := []struct {
		name      string
		wantValue string
		wantOK    bool
	}{
		{"href", "/home", true},
		{"id", "main", true},
		{"hidden", "", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		value, ok := element.AttributeValue(tt.name)
		if value != tt.wantValue || ok != tt.wantOK {
			t.Errorf("AttributeValue(%q) = (%q, %v), want (%q, %v)",
				tt.name, value, ok, tt.wantValue, tt.wantOK)
		}
	}
}

func TestAttributeValueText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"quoted"`, "quoted"},
		{"'single'", "single"},
		{`""`, ""},
		{`"`, `"`},
		{`"mismatched'`, `"mismatched'`},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		attribute := Attribute{Value: Token{Kind: TokenAttributeValue, Literal: tt.raw}}
		if got := attribute.ValueText(); got != tt.want {
			t.Errorf("ValueText() of %q = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
