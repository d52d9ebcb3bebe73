package styleprops

import "strings"

// Element is the result of resolving one component: what to render, the
// attributes it receives and the generated style.
type Element struct {
	Tag Tag
	// Component is the display name of the cached wrapper ("Tag-div", "Tag()-0").
	Component string
	// Attrs are the forwarded props, in input order. className is not among them.
	Attrs Props
	Style *Style
	// ClassName is the caller's className followed by the generated class.
	ClassName string

	class string
}

// GeneratedClass returns the class the style is attached to, or "" when the
// style is empty.
func (e *Element) GeneratedClass() string {
	return e.class
}

// CSS returns the style as CSS rules for the generated class.
func (e *Element) CSS() string {
	if e.class == "" {
		return ""
	}
	return RenderCSS("."+e.class, e.Style)
}

// Attr returns the forwarded attribute called name.
func (e *Element) Attr(name string) (any, bool) {
	return e.Attrs.Get(name)
}

// Classes splits ClassName into its classes.
func (e *Element) Classes() []string {
	return strings.Fields(e.ClassName)
}
