package styleprops

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	title string
}

func (c *card) ComponentName() string { return "Card" }

type slots map[string]string

func (slots) ComponentName() string { return "Slots" }

// panel is a value-typed component; its body may hold anything.
type panel struct {
	title string
	body  any
}

func (panel) ComponentName() string { return "Panel" }

func TestSessionResolveElement(t *testing.T) {
	s := NewSession(nil)

	el, err := s.Resolve(ElementTag("div"), Props{
		{Name: "p", Value: 2},
		{Name: "id", Value: "main"},
		{Name: "className", Value: "extra"},
		{Name: "onClick", Value: "go()"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tag-div", el.Component)
	assert.Equal(t, Props{{Name: "id", Value: "main"}, {Name: "onClick", Value: "go()"}}, el.Attrs)
	assert.Equal(t, map[string]any{"padding": "8px"}, el.Style.Map())

	classes := el.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, "extra", classes[0])
	assert.True(t, strings.HasPrefix(classes[1], "tag-div-"))
	assert.Equal(t, classes[1], el.GeneratedClass())
	assert.Equal(t, "."+classes[1]+" {\n  padding: 8px;\n}\n", el.CSS())
}

func TestSessionClassNamesAreDeterministic(t *testing.T) {
	props := Props{{Name: "p", Value: []int{1, 2}}, {Name: "hoverColor", Value: "red"}}

	a, err := NewSession(nil).Resolve(ElementTag("a"), props)
	require.NoError(t, err)
	b, err := NewSession(nil).Resolve(ElementTag("a"), props)
	require.NoError(t, err)
	assert.Equal(t, a.ClassName, b.ClassName)

	c, err := NewSession(nil).Resolve(ElementTag("a"), Props{{Name: "p", Value: 3}})
	require.NoError(t, err)
	assert.NotEqual(t, a.ClassName, c.ClassName)
}

func TestSessionEmptyStyleHasNoClass(t *testing.T) {
	el, err := NewSession(nil).Resolve(ElementTag("span"), Props{{Name: "title", Value: "x"}})
	require.NoError(t, err)
	assert.Empty(t, el.ClassName)
	assert.Empty(t, el.CSS())
}

func TestSessionTagOverride(t *testing.T) {
	s := NewSession(nil)
	c := &card{}

	el, err := s.Resolve(ElementTag("div"), Props{{Name: "is", Value: "section"}, {Name: "p", Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, "section", el.Tag.Name())
	assert.Equal(t, "Tag-section", el.Component)
	_, ok := el.Attr("is")
	assert.False(t, ok)

	el, err = s.Resolve(ElementTag("div"), Props{{Name: "is", Value: c}})
	require.NoError(t, err)
	assert.True(t, el.Tag.IsReference())
	assert.Same(t, c, el.Tag.Component())

	_, err = s.Resolve(ElementTag("div"), Props{{Name: "is", Value: 42}})
	require.Error(t, err)
	assert.True(t, IsInvalidTag(err))
}

func TestSessionReferenceTags(t *testing.T) {
	s := NewSession(nil)
	first, second := &card{title: "x"}, &card{title: "x"}

	el, err := s.Resolve(ComponentTag(first), Props{{Name: "p", Value: 1}, {Name: "title", Value: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "Tag()-0", el.Component)
	assert.Equal(t, Props{{Name: "p", Value: 1}, {Name: "title", Value: "hi"}}, el.Attrs, "reference tags receive every prop")

	el, err = s.Resolve(ComponentTag(first), nil)
	require.NoError(t, err)
	assert.Equal(t, "Tag()-0", el.Component)

	el, err = s.Resolve(ComponentTag(second), nil)
	require.NoError(t, err)
	assert.Equal(t, "Tag()-1", el.Component)

	assert.Equal(t, 2, s.Cache().References())
}

func TestSessionRejectsUncomparableComponent(t *testing.T) {
	_, err := NewSession(nil).Resolve(ComponentTag(slots{}), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = NewSession(nil).Resolve(Tag{}, nil)
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestSessionRejectsValueComponents(t *testing.T) {
	s := NewSession(nil)

	for _, ref := range []Component{
		panel{title: "a"},
		panel{body: []int{1}},
		(*card)(nil),
	} {
		assert.NotPanics(t, func() {
			_, err := s.Resolve(ComponentTag(ref), Props{{Name: "p", Value: 1}})
			assert.ErrorIs(t, err, ErrInvalidTag)
		})
	}

	_, err := s.Resolve(ElementTag("div"), Props{{Name: "is", Value: panel{body: []int{1}}}})
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Zero(t, s.Cache().Len())
}

func TestSessionConcurrentResolve(t *testing.T) {
	s := NewSession(nil)
	comps := []*card{{}, {}, {}}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tag := ComponentTag(comps[i%len(comps)])
			if i%2 == 0 {
				tag = ElementTag(fmt.Sprintf("h%d", i%6+1))
			}
			_, err := s.Resolve(tag, Props{{Name: "m", Value: i % 4}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, s.Cache().References())
	assert.Equal(t, 6, s.Cache().Len())
}
