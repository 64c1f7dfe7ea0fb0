package parser

// Node is a unit of the parsed tree, either a Text leaf or an Element.
type Node interface {
	node()
}

// Text is a run of character data between tags.
type Text struct {
	Token Token
}

// Element is a tag together with its attributes and nested children.
type Element struct {
	TagName    Token
	Attributes []Attribute
	Children   []Node
}

// Attribute is a name/value pair attached to an Element.
type Attribute struct {
	Name  Token
	Value Token
}

func (Text) node()    {}
func (Element) node() {}

// Name returns the element's tag name as written in the source.
func (e Element) Name() string {
	return e.TagName.Literal
}

// AttributeValue returns the unquoted value of the named attribute and
// whether the attribute is present.
func (e Element) AttributeValue(name string) (string, bool) {
	for _, attribute := range e.Attributes {
		if attribute.Name.Literal == name {
			return attribute.ValueText(), true
		}
	}
	return "", false
}

// ValueText strips one layer of matching surrounding quotes from the raw
// value if both are present, otherwise it returns the raw value unchanged.
func (a Attribute) ValueText() string {
	value := a.Value.Literal
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
