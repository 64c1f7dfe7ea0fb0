package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maheshbansod/html-parser/parser"
)

var (
	elementStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	attributeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	textStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	positionStyle  = lipgloss.NewStyle().Faint(true)
)

// TreeOption configures a TreeEncoder.
type TreeOption func(*TreeEncoder)

// WithPositions appends each node's span to its line.
func WithPositions() TreeOption {
	return func(e *TreeEncoder) {
		e.positions = true
	}
}

// WithColor styles the dump for terminal output.
func WithColor() TreeOption {
	return func(e *TreeEncoder) {
		e.color = true
	}
}

// TreeEncoder writes a forest as an indented outline, one node per line.
type TreeEncoder struct {
	w         io.Writer
	positions bool
	color     bool
}

func NewTreeEncoder(w io.Writer, opts ...TreeOption) *TreeEncoder {
	e := &TreeEncoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *TreeEncoder) Encode(nodes []parser.Node) error {
	var b strings.Builder
	e.writeNodes(&b, nodes, 0)
	_, err := io.WriteString(e.w, b.String())
	return err
}

func (e *TreeEncoder) writeNodes(b *strings.Builder, nodes []parser.Node, indent int) {
	for _, node := range nodes {
		e.writeNode(b, node, indent)
	}
}

func (e *TreeEncoder) writeNode(b *strings.Builder, node parser.Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	switch node := node.(type) {
	case parser.Text:
		b.WriteString(e.styled(textStyle, fmt.Sprintf("text %q", node.Token.Literal)))
		e.writeSpan(b, node.Token.Span)
		b.WriteString("\n")
	case parser.Element:
		b.WriteString(e.styled(elementStyle, "element "+node.TagName.Literal))
		for _, attribute := range node.Attributes {
			b.WriteString(" ")
			b.WriteString(e.styled(attributeStyle,
				fmt.Sprintf("%s=%q", attribute.Name.Literal, attribute.ValueText())))
		}
		e.writeSpan(b, node.TagName.Span)
		b.WriteString("\n")
		e.writeNodes(b, node.Children, indent+1)
	}
}

func (e *TreeEncoder) writeSpan(b *strings.Builder, span parser.Span) {
	if !e.positions {
		return
	}
	b.WriteString(" ")
	b.WriteString(e.styled(positionStyle, "["+span.String()+"]"))
}

func (e *TreeEncoder) styled(style lipgloss.Style, s string) string {
	if !e.color {
		return s
	}
	return style.Render(s)
}
