package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/net/html/atom"

	"github.com/maheshbansod/html-parser/parser"
)

const diagnosticSource = "htmlparse"

// diagnose reports findings over the raw token stream. Scanning the
// untrimmed content keeps every range aligned with the document as the
// client sees it.
func diagnose(content string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, token := range parser.Tokens(content) {
		if token.Kind != parser.TokenTagName && token.Kind != parser.TokenTagEnd {
			continue
		}
		if d := checkTagName(token); d != nil {
			diagnostics = append(diagnostics, *d)
		}
	}
	return diagnostics
}

func checkTagName(token parser.Token) *protocol.Diagnostic {
	name := token.Literal
	switch {
	case name == "":
		message := "missing tag name"
		if token.Kind == parser.TokenTagEnd {
			message = "missing closing tag name"
		}
		return newDiagnostic(token, protocol.DiagnosticSeverityWarning, message)
	case strings.HasPrefix(name, "!"):
		return newDiagnostic(token, protocol.DiagnosticSeverityInformation,
			"declarations and comments parse as plain elements")
	case strings.Contains(name, "-"):
		// custom element
		return nil
	case atom.Lookup([]byte(strings.ToLower(name))) == 0:
		return newDiagnostic(token, protocol.DiagnosticSeverityHint,
			"not a standard HTML element")
	}
	return nil
}

func newDiagnostic(token parser.Token, severity protocol.DiagnosticSeverity, message string) *protocol.Diagnostic {
	source := diagnosticSource
	return &protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      protocol.UInteger(token.Span.Start.Line),
				Character: protocol.UInteger(token.Span.Start.Column),
			},
			End: protocol.Position{
				Line:      protocol.UInteger(token.Span.End.Line),
				Character: protocol.UInteger(token.Span.End.Column),
			},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
