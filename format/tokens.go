package format

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/maheshbansod/html-parser/parser"
)

// TokenEncoder writes one token per line in "start-end Kind literal" form.
type TokenEncoder struct {
	w io.Writer
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(tokens []parser.Token) error {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(token.String())
		b.WriteString("\n")
	}
	_, err := io.WriteString(e.w, b.String())
	return err
}

// TokenJSONEncoder writes a token stream as indented JSON.
type TokenJSONEncoder struct {
	w io.Writer
}

func NewTokenJSONEncoder(w io.Writer) *TokenJSONEncoder {
	return &TokenJSONEncoder{w: w}
}

func (e *TokenJSONEncoder) Encode(tokens []parser.Token) error {
	text, err := MarshalTokens(tokens)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type jsonToken struct {
	Kind    string   `json:"kind"`
	Span    jsonSpan `json:"span"`
	Literal string   `json:"literal"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// MarshalTokens returns the indented JSON encoding of a token stream. An
// empty stream encodes as an empty array, not null.
func MarshalTokens(tokens []parser.Token) ([]byte, error) {
	out := make([]jsonToken, len(tokens))
	for i, token := range tokens {
		out[i] = jsonToken{
			Kind:    token.Kind.String(),
			Literal: token.Literal,
			Span: jsonSpan{
				Start: jsonPosition{Line: token.Span.Start.Line, Column: token.Span.Start.Column},
				End:   jsonPosition{Line: token.Span.End.Line, Column: token.Span.End.Column},
			},
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
