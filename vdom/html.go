package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML serializes n as HTML. Click handlers are dropped, attributes are
// written in key order so output is stable across runs.
func WriteHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	node, err := toHTMLNode(n)
	if err != nil {
		return err
	}
	return html.Render(w, node)
}

// RenderHTML is WriteHTML into a string.
func RenderHTML(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTMLNode(n *VNode) (*html.Node, error) {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}, nil
	}
	if n.Tag == "" {
		return nil, fmt.Errorf("vnode with empty tag (content %q)", n.Content)
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttrs(n.Attributes),
	}

	if n.Tag == "input" {
		// Inputs are void elements; their content is the initial value.
		if n.Content != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
		return el, nil
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, c := range n.Children {
		child, err := toHTMLNode(c)
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", n.Tag, err)
		}
		el.AppendChild(child)
	}
	return el, nil
}

func htmlAttrs(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			// Boolean attributes are present without a value, or absent.
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		case func(), nil:
			continue
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		default:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return out
}
