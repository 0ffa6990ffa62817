package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavLinks_MapToValidPages(t *testing.T) {
	require.Len(t, NavLinks, 6)
	for i, link := range NavLinks {
		assert.True(t, link.Target.Valid(), link.Label)
		assert.Equal(t, Pages[i], link.Target)
		assert.Equal(t, link.Target, FromLabel(link.Label))
	}
}

func TestFromLabel(t *testing.T) {
	assert.Equal(t, Blog, FromLabel("Blog"))
	assert.Equal(t, Contact, FromLabel("CONTACT"))

	unknown := FromLabel("Pricing")
	assert.Equal(t, Page("pricing"), unknown)
	assert.False(t, unknown.Valid())
}

func TestParse(t *testing.T) {
	p, ok := Parse(" About ")
	assert.True(t, ok)
	assert.Equal(t, About, p)

	_, ok = Parse("careers")
	assert.False(t, ok)
}

func TestState_SetPageNotifies(t *testing.T) {
	s := NewState(Home)
	var seen []Page
	unsubscribe := s.Subscribe(func(p Page) { seen = append(seen, p) })

	s.SetPage(Blog)
	unsubscribe()
	s.SetPage(About)

	assert.Equal(t, []Page{Blog}, seen)
	assert.Equal(t, About, s.CurrentPage())
}

func TestState_IgnoresUnknownPage(t *testing.T) {
	s := NewState(Showcase)
	notified := false
	s.Subscribe(func(Page) { notified = true })

	s.SetPage(FromLabel("Pricing"))

	assert.Equal(t, Showcase, s.CurrentPage())
	assert.False(t, notified)
}

func TestNavigatorFunc(t *testing.T) {
	var got Page
	var nav Navigator = NavigatorFunc(func(p Page) { got = p })

	nav.SetPage(Services)

	assert.Equal(t, Services, got)
}
