package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseCleanDocument(t *testing.T) {
	diagnostics := diagnose(`<html><body><div class="x">hi</div></body></html>`)
	if len(diagnostics) != 0 {
		t.Errorf("got %d diagnostics, want 0: %v", len(diagnostics), diagnostics)
	}
}

func TestDiagnoseRules(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantMessage  string
		wantSeverity protocol.DiagnosticSeverity
	}{
		{
			name:         "missing tag name",
			input:        "<>",
			wantMessage:  "missing tag name",
			wantSeverity: protocol.DiagnosticSeverityWarning,
		},
		{
			name:         "missing closing tag name",
			input:        "</>",
			wantMessage:  "missing closing tag name",
			wantSeverity: protocol.DiagnosticSeverityWarning,
		},
		{
			name:         "doctype",
			input:        "<!DOCTYPE html>",
			wantMessage:  "declarations and comments parse as plain elements",
			wantSeverity: protocol.DiagnosticSeverityInformation,
		},
		{
			name:         "comment",
			input:        "<!-- note -->",
			wantMessage:  "declarations and comments parse as plain elements",
			wantSeverity: protocol.DiagnosticSeverityInformation,
		},
		{
			name:         "unknown element",
			input:        "<divv>text</divv>",
			wantMessage:  "not a standard HTML element",
			wantSeverity: protocol.DiagnosticSeverityHint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diagnostics := diagnose(tt.input)
			if len(diagnostics) == 0 {
				t.Fatalf("diagnose(%q) returned no diagnostics", tt.input)
			}
			d := diagnostics[0]
			if d.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", d.Message, tt.wantMessage)
			}
			if d.Severity == nil || *d.Severity != tt.wantSeverity {
				t.Errorf("severity = %v, want %v", d.Severity, tt.wantSeverity)
			}
			if d.Source == nil || *d.Source != diagnosticSource {
				t.Errorf("source = %v, want %q", d.Source, diagnosticSource)
			}
		})
	}
}

func TestDiagnoseSkipsCustomElements(t *testing.T) {
	diagnostics := diagnose("<my-widget></my-widget>")
	if len(diagnostics) != 0 {
		t.Errorf("got %d diagnostics, want 0: %v", len(diagnostics), diagnostics)
	}
}

func TestDiagnoseIgnoresCase(t *testing.T) {
	diagnostics := diagnose("<DIV></DIV>")
	if len(diagnostics) != 0 {
		t.Errorf("got %d diagnostics, want 0: %v", len(diagnostics), diagnostics)
	}
}

func TestDiagnosePositionsAreRaw(t *testing.T) {
	diagnostics := diagnose("\n\n<foo>")
	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diagnostics))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 1},
		End:   protocol.Position{Line: 2, Character: 4},
	}
	if got := diagnostics[0].Range; got != want {
		t.Errorf("range = %v, want %v", got, want)
	}
}

func TestDiagnoseEmptyIsNotNil(t *testing.T) {
	// A nil slice would publish as null instead of clearing diagnostics.
	if diagnose("") == nil {
		t.Error("diagnose returned nil, want empty slice")
	}
}
