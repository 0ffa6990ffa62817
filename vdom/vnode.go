package vdom

// TextTag marks a bare text node. Its Content is rendered as text and it
// never carries attributes or children.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node, rendered before Children
	OnClick    func()         // Optional click event handler

	callbacks []any // js.Func values attached by the browser renderer
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is moved to OnClick.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   compact(children),
		Content:    content,
		OnClick:    onClick,
	}
}

// compact drops nil children so conditional branches can pass nil.
func compact(children []*VNode) []*VNode {
	if len(children) == 0 {
		return nil
	}
	out := children[:0:0]
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Attr returns the attribute value for key as a string, or "" if unset.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[key].(string)
	return s
}

// Class returns the node's class attribute.
func (v *VNode) Class() string {
	return v.Attr("class")
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Tag: TextTag, Content: content}
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("p", attrs, children, text)
}

// Span creates a <span> VNode.
func Span(text string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("span", attrs, children, text)
}

// Heading4 creates an <h4> VNode.
func Heading4(text string, attrs map[string]any) *VNode {
	return NewVNode("h4", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	return input("text", attrs)
}

// InputEmail returns a VNode representing an <input type="email"> element.
func InputEmail(attrs map[string]any) *VNode {
	return input("email", attrs)
}

func input(kind string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = kind
	return NewVNode("input", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Nav creates a <nav> VNode.
func Nav(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("nav", attrs, children, "")
}

// Main creates a <main> VNode.
func Main(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("main", attrs, children, "")
}

// Footer creates a <footer> VNode.
func Footer(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("footer", attrs, children, "")
}

// List creates a <ul> VNode.
func List(attrs map[string]any, items ...*VNode) *VNode {
	return NewVNode("ul", attrs, items, "")
}

// ListItem creates a <li> VNode.
func ListItem(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
