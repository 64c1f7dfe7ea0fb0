package parser

import "strings"

// DefaultMaxDepth bounds element recursion during tree building.
const DefaultMaxDepth = 1000

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth overrides the recursion bound for nested elements. Elements
// opened past the bound are collected as siblings at the bound instead of
// as descendants.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser builds a forest of Nodes from a single source buffer.
type Parser struct {
	scanner  *Scanner
	maxDepth int
}

// New returns a Parser over source. Leading and trailing whitespace is
// trimmed once at construction; all positions refer to the trimmed buffer.
func New(source string, opts ...Option) *Parser {
	p := &Parser{
		scanner:  NewScanner(strings.TrimSpace(source)),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse drains the token stream and returns the ordered forest of root
// nodes. The underlying scanner only moves forward, so a second call
// returns an empty forest.
func (p *Parser) Parse() []Node {
	return p.build(0)
}

func (p *Parser) build(depth int) []Node {
	var nodes []Node
	for {
		token := p.scanner.NextToken()
		switch token.Kind {
		case TokenEOF:
			return nodes
		case TokenText:
			nodes = append(nodes, Text{Token: token})
		case TokenTagName:
			attributes := p.collectAttributes()
			var children []Node
			if depth < p.maxDepth {
				children = p.build(depth + 1)
			}
			nodes = append(nodes, Element{
				TagName:    token,
				Attributes: attributes,
				Children:   children,
			})
		default:
			// Closing tags and stray attribute tokens carry no structure.
		}
	}
}

func (p *Parser) collectAttributes() []Attribute {
	var attributes []Attribute
	for {
		name := p.scanner.NextToken()
		if name.Kind != TokenAttributeName {
			return attributes
		}
		value := p.scanner.NextToken()
		if value.Kind != TokenAttributeValue {
			return attributes
		}
		attributes = append(attributes, Attribute{Name: name, Value: value})
	}
}
