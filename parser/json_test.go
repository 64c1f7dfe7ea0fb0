package parser

import (
	"encoding/json"
	"testing"
)

func TestNodeMarshalJSON(t *testing.T) {
	forest := New(`<a href="/x">hi</a>`).Parse()
	if len(forest) != 1 {
		t.Fatalf("got %d roots, want 1", len(forest))
	}

	data, err := json.Marshal(forest[0])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"kind":"Element",` +
		`"span":{"start":{"line":0,"column":1},"end":{"line":0,"column":2}},` +
		`"tag":"a",` +
		`"attributes":[{"name":"href","value":"/x",` +
		`"span":{"start":{"line":0,"column":3},"end":{"line":0,"column":11}}}],` +
		`"children":[{"kind":"Text",` +
		`"span":{"start":{"line":0,"column":13},"end":{"line":0,"column":15}},` +
		`"text":"hi"}]}`
	if got := string(data); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNodeMarshalJSONPointSpan(t *testing.T) {
	forest := New("<>").Parse()
	if len(forest) != 1 {
		t.Fatalf("got %d roots, want 1", len(forest))
	}

	data, err := json.Marshal(forest[0])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"kind":"Element",` +
		`"span":{"start":{"line":0,"column":1},"end":{"line":0,"column":1}},` +
		`"tag":""}`
	if got := string(data); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
