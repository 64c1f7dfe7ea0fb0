package parser

import "encoding/json"

type jsonNode struct {
	Kind       string           `json:"kind"`
	Span       jsonSpan         `json:"span"`
	Text       string           `json:"text,omitempty"`
	Tag        string           `json:"tag,omitempty"`
	Attributes []*jsonAttribute `json:"attributes,omitempty"`
	Children   []*jsonNode      `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonAttribute struct {
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Span  jsonSpan `json:"span"`
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeToJSON(t))
}

func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeToJSON(e))
}

func nodeToJSON(n Node) *jsonNode {
	switch n := n.(type) {
	case Text:
		return &jsonNode{
			Kind: "Text",
			Span: spanToJSON(n.Token.Span),
			Text: n.Token.Literal,
		}
	case Element:
		jn := &jsonNode{
			Kind: "Element",
			Span: spanToJSON(n.TagName.Span),
			Tag:  n.TagName.Literal,
		}
		for _, attribute := range n.Attributes {
			jn.Attributes = append(jn.Attributes, &jsonAttribute{
				Name:  attribute.Name.Literal,
				Value: attribute.ValueText(),
				Span: jsonSpan{
					Start: positionToJSON(attribute.Name.Span.Start),
					End:   positionToJSON(attribute.Value.Span.End),
				},
			})
		}
		for _, child := range n.Children {
			jn.Children = append(jn.Children, nodeToJSON(child))
		}
		return jn
	}
	return nil
}

func spanToJSON(s Span) jsonSpan {
	return jsonSpan{Start: positionToJSON(s.Start), End: positionToJSON(s.End)}
}

func positionToJSON(p Position) jsonPosition {
	return jsonPosition{Line: p.Line, Column: p.Column}
}
