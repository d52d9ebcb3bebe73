package styleprops

import "github.com/yacobolo/styleprops/internal/htmlattr"

// AttributeValidator reports whether a prop name is a legitimate markup
// attribute for the rendered element.
type AttributeValidator func(name string) bool

// styleAttributes are valid attributes (mostly SVG presentation attributes)
// that are treated as style props anyway.
var styleAttributes = map[string]struct{}{
	"color":          {},
	"cursor":         {},
	"display":        {},
	"fontFamily":     {},
	"fontSize":       {},
	"fontStyle":      {},
	"fontWeight":     {},
	"height":         {},
	"width":          {},
	"letterSpacing":  {},
	"opacity":        {},
	"order":          {},
	"overflow":       {},
	"size":           {},
	"scale":          {},
	"textDecoration": {},
	"transform":      {},
}

// IsStyleAttribute reports whether name is an attribute that is always
// consumed as a style prop.
func IsStyleAttribute(name string) bool {
	_, ok := styleAttributes[name]
	return ok
}

// WithoutStyleAttributes wraps a host validator so the style attributes are
// never reported as valid.
func WithoutStyleAttributes(v AttributeValidator) AttributeValidator {
	return func(name string) bool {
		return v(name) && !IsStyleAttribute(name)
	}
}

// DefaultAttributeValidator checks the built-in HTML/SVG whitelist.
func DefaultAttributeValidator(name string) bool {
	return htmlattr.IsValid(name) && !IsStyleAttribute(name)
}
