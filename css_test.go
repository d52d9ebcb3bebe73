package styleprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "color", want: "color"},
		{in: "backgroundColor", want: "background-color"},
		{in: "borderTopLeftRadius", want: "border-top-left-radius"},
		{in: "WebkitTransition", want: "-webkit-transition"},
		{in: "MozAppearance", want: "-moz-appearance"},
		{in: "msGridRow", want: "-ms-grid-row"},
		{in: "OTransform", want: "-o-transform"},
		{in: "order", want: "order"},
		{in: "--brandColor", want: "--brandColor"},
		{in: "focusWithin", want: "focus-within"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, kebabCase(tt.in))
		})
	}
}

func TestCSSValue(t *testing.T) {
	assert.Equal(t, "8px", CSSValue("padding", float64(8)))
	assert.Equal(t, "0", CSSValue("margin", 0))
	assert.Equal(t, "-4px", CSSValue("marginTop", -4))
	assert.Equal(t, "1.5", CSSValue("lineHeight", 1.5))
	assert.Equal(t, "10", CSSValue("zIndex", 10))
	assert.Equal(t, "50%", CSSValue("width", "50%"))
}

func TestRenderCSS(t *testing.T) {
	s := NewStyle().
		Set("padding", "8px").
		Set("backgroundColor", "red")
	s.Scope(":hover").Set("backgroundColor", "blue")
	s.Scope("& > a").Set("color", "inherit")
	s.Scope("@media screen and (min-width: 576px)").Set("padding", 16)

	want := `.x {
  padding: 8px;
  background-color: red;
}
.x:hover {
  background-color: blue;
}
.x > a {
  color: inherit;
}
@media screen and (min-width: 576px) {
  .x {
    padding: 16px;
  }
}
`
	assert.Equal(t, want, RenderCSS(".x", s))
}

func TestRenderCSSPseudoInsideMedia(t *testing.T) {
	s := NewStyle()
	s.Scope("@media screen and (min-width: 768px)").Scope("::placeholder").Set("opacity", 0.5)

	want := `@media screen and (min-width: 768px) {
  .x::placeholder {
    opacity: 0.5;
  }
}
`
	assert.Equal(t, want, RenderCSS(".x", s))
	assert.Empty(t, RenderCSS(".x", NewStyle()))
}
