// Package lsp serves markup diagnostics, document outlines, and hover
// information over the Language Server Protocol. Documents are re-parsed
// in full on every open, change, and save.
package lsp

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/maheshbansod/html-parser/parser"
)

const lsName = "htmlparse"

// document is one open buffer. The forest is parsed from the trimmed
// content, so base records where the trimmed buffer starts inside the
// document as the client sees it.
type document struct {
	content string
	forest  []parser.Node
	base    parser.Position
}

func newDocument(content string) *document {
	return &document{
		content: content,
		forest:  parser.New(content).Parse(),
		base:    trimBase(content),
	}
}

func trimBase(content string) parser.Position {
	var base parser.Position
	for _, r := range content {
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			base.Line++
			base.Column = 0
		} else {
			base.Column++
		}
	}
	return base
}

func (d *document) toProtocol(p parser.Position) protocol.Position {
	line := p.Line + d.base.Line
	column := p.Column
	if p.Line == 0 {
		column += d.base.Column
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(column)}
}

func (d *document) fromProtocol(p protocol.Position) parser.Position {
	line := int(p.Line) - d.base.Line
	column := int(p.Character)
	if line == 0 {
		column -= d.base.Column
	}
	return parser.Position{Line: line, Column: column}
}

func (d *document) rangeOf(span parser.Span) protocol.Range {
	return protocol.Range{Start: d.toProtocol(span.Start), End: d.toProtocol(span.End)}
}

type Server struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document

	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	s := &Server{
		documents: make(map[protocol.DocumentUri]*document),
		version:   version,
	}

	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.textDocumentDidOpen,
		TextDocumentDidChange:      s.textDocumentDidChange,
		TextDocumentDidClose:       s.textDocumentDidClose,
		TextDocumentDidSave:        s.textDocumentDidSave,
		TextDocumentDocumentSymbol: s.textDocumentDocumentSymbol,
		TextDocumentHover:          s.textDocumentHover,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) RunTCP(address string) error {
	return s.server.RunTCP(address)
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.updateDocument(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.updateDocument(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) updateDocument(ctx *glsp.Context, uri protocol.DocumentUri, content string) {
	s.mu.Lock()
	s.documents[uri] = newDocument(content)
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnose(content),
	})
}

func (s *Server) getDocument(uri protocol.DocumentUri) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[uri]
}

func (s *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.getDocument(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return elementSymbols(doc, doc.forest), nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.getDocument(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	path := elementPath(doc.forest, doc.fromProtocol(params.Position))
	if len(path) == 0 {
		return nil, nil
	}

	hoverRange := doc.rangeOf(path[len(path)-1].TagName.Span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverContent(path),
		},
		Range: &hoverRange,
	}, nil
}

func hoverContent(path []parser.Element) string {
	names := make([]string, len(path))
	for i, element := range path {
		names[i] = element.Name()
	}

	var b strings.Builder
	b.WriteString(strings.Join(names, " > "))
	for _, attribute := range path[len(path)-1].Attributes {
		b.WriteString("\n- ")
		b.WriteString(attribute.Name.Literal)
		if !attribute.Value.Span.IsPoint() {
			b.WriteString(" = ")
			b.WriteString(strconv.Quote(attribute.ValueText()))
		}
	}
	return b.String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
