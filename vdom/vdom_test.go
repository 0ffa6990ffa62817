package vdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVNode_MovesOnClickOutOfAttributes(t *testing.T) {
	clicked := false
	n := Button("Go", map[string]any{
		"class":   "btn",
		"onClick": func() { clicked = true },
	})

	require.NotNil(t, n.OnClick)
	_, stillThere := n.Attributes["onClick"]
	assert.False(t, stillThere)

	n.OnClick()
	assert.True(t, clicked)
}

func TestNewVNode_DropsNilChildren(t *testing.T) {
	var absent *VNode
	n := Div(nil, Text("a"), absent, Text("b"))

	require.Len(t, n.Children, 2)
	assert.Equal(t, "ab", TextContent(n))
}

func TestClass(t *testing.T) {
	assert.Equal(t, "a b c", Class("a b", "", "b  c", "a"))
	assert.Equal(t, "", Class("", "  "))
}

func TestFind(t *testing.T) {
	tree := Div(nil,
		Span("one", map[string]any{"id": "x"}),
		Div(nil, Span("two", map[string]any{"id": "x"})),
	)

	first := Find(tree, func(v *VNode) bool { return v.Attr("id") == "x" })
	require.NotNil(t, first)
	assert.Equal(t, "one", first.Content)

	all := FindAll(tree, func(v *VNode) bool { return v.Tag == "span" })
	assert.Len(t, all, 2)

	assert.Nil(t, Find(tree, func(v *VNode) bool { return v.Tag == "ul" }))
}

func TestRenderHTML(t *testing.T) {
	tree := Div(map[string]any{"class": "wrap", "hidden": false, "data-n": 3},
		Span("Noob", nil),
		InputEmail(map[string]any{"placeholder": "your@email.com", "required": true}),
		Paragraph("Made with ", nil, Span("{❤️}", nil), Text(" by <Noobdev>")),
		Button("Go", map[string]any{"onClick": func() {}}),
	)

	out, err := RenderHTML(tree)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="wrap" data-n="3">`), out)
	assert.Contains(t, out, `<input placeholder="your@email.com" required="" type="email"/>`)
	assert.Contains(t, out, `<p>Made with <span>{❤️}</span> by &lt;Noobdev&gt;</p>`)
	assert.Contains(t, out, `<button>Go</button>`)
	assert.NotContains(t, out, "hidden")
}

func TestRenderHTML_EmptyTag(t *testing.T) {
	_, err := RenderHTML(Div(nil, &VNode{Content: "orphan"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<div>")
}
