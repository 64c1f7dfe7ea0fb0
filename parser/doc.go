// Package parser provides a lenient two-stage parser for HTML-like markup.
//
// # Overview
//
// The parser turns a raw text buffer into an ordered forest of element and
// text nodes. It never fails: every malformed-input condition degrades into
// some structural approximation instead of an error. It is designed for
// tooling where incomplete or malformed markup is common.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Scanner   │────▶│   Parser    │
//	│  (string)   │     │  (tokens)   │     │  (forest)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  Position   │     │   Depth     │
//	                    │  Tracking   │     │   Guard     │
//	                    └─────────────┘     └─────────────┘
//
// # Scanner Modes
//
// The Scanner is a single forward cursor driven by three modes:
//
//   - outside tag: emits Text runs, opening tag names ("<div" → TagName),
//     and closing tags ("</div>" → TagEnd)
//   - attribute name: emits AttributeName tokens and the OpeningTagEnd
//     token for the ">" that closes an opening tag
//   - attribute value: always emits exactly one AttributeValue token,
//     a zero-length one when the attribute has no "=value" part
//
// Identifier characters are everything except '=', '/', '>', and Unicode
// whitespace, so names such as "custom-element", "1banner", or "!DOCTYPE"
// scan as ordinary identifiers. Quoted attribute values may span multiple
// lines, and the closing quote is optional at end of input.
//
// # Source Positions
//
// Every token carries the span it was scanned from:
//
//	type Position struct {
//	    Line   int // 0-based line number
//	    Column int // 0-based column, counted in runes
//	}
//
//	type Span struct {
//	    Start Position
//	    End   Position // one past the last rune; Start == End for points
//	}
//
// A point span (Start == End, empty literal) marks a construct that was
// expected but absent, such as the name in "<>" or the value of a bare
// attribute. Token literals are substrings of the input; no text is copied
// or decoded.
//
// # Error Tolerance
//
// There is no error type anywhere in this package. Malformed input is
// absorbed:
//
//   - "<" with no name scans as a TagName with a point span
//   - an unterminated quoted value runs to end of input
//   - a stray "</p>" with no matching opener is dropped by the builder
//   - an unterminated opening tag simply ends the stream
//
// Comments and DOCTYPE declarations are not recognized: "<!-- x -->" scans
// as an element named "!--" with attributes. Consumers that care can detect
// the "!" prefix themselves.
//
// # Tree Building
//
// Parse pulls tokens and recurses on each TagName to collect children.
// Closing tags never terminate the recursion by themselves; nesting is
// reconstructed purely from token order, and a closing tag's name is never
// checked against its opener. Recursion depth is bounded (default 1000);
// elements opened past the bound become siblings at the bound.
//
// # Configuration
//
//	type Option func(*Parser)
//
//	// WithMaxDepth overrides the recursion bound for nested elements.
//	func WithMaxDepth(depth int) Option
//
// # Thread Safety
//
// A Parser or Scanner instance is not safe for concurrent use. Create
// separate instances for concurrent parsing of different buffers.
//
// # Example Usage
//
//	// Parse a buffer into a forest
//	p := parser.New(`<a href="/home">home</a>`)
//	for _, node := range p.Parse() {
//	    switch node := node.(type) {
//	    case parser.Element:
//	        fmt.Println(node.Name())
//	    case parser.Text:
//	        fmt.Println(node.Token.Literal)
//	    }
//	}
//
//	// Walk the raw token stream
//	for _, token := range parser.Tokens(`<a href=x>`) {
//	    fmt.Println(token)
//	}
package parser
