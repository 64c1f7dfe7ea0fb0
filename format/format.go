// Package format renders parsed forests and raw token streams for the
// command line and the web playground. None of the encoders reconstructs
// markup; they are diagnostic views only.
package format

import (
	"github.com/maheshbansod/html-parser/parser"
)

// Encoder writes a rendering of a parsed forest to an underlying writer.
type Encoder interface {
	Encode(nodes []parser.Node) error
}

// TokenStreamEncoder writes a rendering of a raw token stream to an
// underlying writer.
type TokenStreamEncoder interface {
	Encode(tokens []parser.Token) error
}
