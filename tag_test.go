package styleprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagOf(t *testing.T) {
	c := &card{}

	tests := []struct {
		name string
		in   any
		want Tag
	}{
		{"string", "span", ElementTag("span")},
		{"tag", ElementTag("a"), ElementTag("a")},
		{"component", c, ComponentTag(c)},
		{"empty string", "", Tag{}},
		{"number", 42, Tag{}},
		{"nil", nil, Tag{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagOf(tt.in))
		})
	}
}

func TestTagAccessors(t *testing.T) {
	div := ElementTag("div")
	assert.Equal(t, "div", div.Name())
	assert.Equal(t, "div", div.String())
	assert.False(t, div.IsReference())
	assert.Nil(t, div.Component())

	c := &card{title: "x"}
	ref := ComponentTag(c)
	assert.Equal(t, "Card", ref.Name())
	assert.Equal(t, "Card(*styleprops.card)", ref.String())
	assert.True(t, ref.IsReference())
	assert.Same(t, c, ref.Component())

	assert.Equal(t, "nil(*styleprops.card)", ComponentTag((*card)(nil)).String())

	assert.True(t, Tag{}.IsZero())
	assert.False(t, ref.IsZero())
}

func TestTagValidate(t *testing.T) {
	require.NoError(t, ElementTag("div").validate())
	require.NoError(t, ComponentTag(&card{}).validate())

	err := Tag{}.validate()
	assert.True(t, IsInvalidTag(err))

	tests := []struct {
		name string
		ref  Component
		want string
	}{
		{"map", slots{}, "not a pointer"},
		{"struct value", panel{title: "a"}, "not a pointer"},
		{"struct holding a slice", panel{body: []int{1}}, "not a pointer"},
		{"nil pointer", (*card)(nil), "is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ComponentTag(tt.ref).validate()
			assert.True(t, IsInvalidTag(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestElement(t *testing.T) {
	s := NewSession(nil)

	el, err := s.ResolveMap(ElementTag("button"), map[string]any{
		"className": "btn primary",
		"m":         1,
		"type":      "submit",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"btn", "primary", el.GeneratedClass()}, el.Classes())
	v, ok := el.Attr("type")
	require.True(t, ok)
	assert.Equal(t, "submit", v)
	_, ok = el.Attr("className")
	assert.False(t, ok)
	assert.Equal(t, "."+el.GeneratedClass()+" {\n  margin: 4px;\n}\n", el.CSS())

	bare, err := s.ResolveMap(ElementTag("button"), map[string]any{"className": "btn"})
	require.NoError(t, err)
	assert.Empty(t, bare.GeneratedClass())
	assert.Empty(t, bare.CSS())
	assert.Equal(t, "btn", bare.ClassName)
}
