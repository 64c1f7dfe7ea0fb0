package format

import (
	"encoding/json"
	"io"

	"github.com/maheshbansod/html-parser/parser"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(nodes []parser.Node) error {
	text, err := MarshalForest(nodes)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

// MarshalForest returns the indented JSON encoding of a forest. An empty
// forest encodes as an empty array, not null.
func MarshalForest(nodes []parser.Node) ([]byte, error) {
	if nodes == nil {
		nodes = []parser.Node{}
	}
	return json.MarshalIndent(nodes, "", "  ")
}
