package styleprops

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ComputeFunc derives a style fragment from a resolved prop value.
// prop is the name the author used, which differs from the definition name
// only for routed pseudo props.
type ComputeFunc func(value any, prop string) *Style

type targetKind int

const (
	targetNone targetKind = iota
	targetProperty
	targetProperties
	targetComputed
)

// StyleTarget says what CSS a prop value turns into: one CSS property, several
// CSS properties receiving the same value, or a computed fragment.
type StyleTarget struct {
	kind  targetKind
	props []string
	fn    ComputeFunc
	name  string
}

// Property targets a single CSS property.
func Property(name string) StyleTarget {
	return StyleTarget{kind: targetProperty, props: []string{name}}
}

// Properties fans one value out to every listed CSS property (mx -> marginLeft, marginRight).
func Properties(names ...string) StyleTarget {
	return StyleTarget{kind: targetProperties, props: slices.Clone(names)}
}

// Computed derives the fragment with fn.
func Computed(fn ComputeFunc) StyleTarget {
	return StyleTarget{kind: targetComputed, fn: fn}
}

// IsZero reports whether the target was never set.
func (t StyleTarget) IsZero() bool {
	return t.kind == targetNone
}

// IsComputed reports whether the target is a function.
func (t StyleTarget) IsComputed() bool {
	return t.kind == targetComputed
}

// CSSProperties returns the targeted CSS property names. Computed targets have none.
func (t StyleTarget) CSSProperties() []string {
	return slices.Clone(t.props)
}

func (t StyleTarget) String() string {
	switch t.kind {
	case targetProperty:
		return t.props[0]
	case targetProperties:
		return "[" + strings.Join(t.props, " ") + "]"
	case targetComputed:
		if t.name != "" {
			return "computed(" + t.name + ")"
		}
		return "computed"
	default:
		return "<none>"
	}
}

// Apply produces the fragment for an already resolved value.
func (t StyleTarget) Apply(value any, prop string) *Style {
	switch t.kind {
	case targetProperty, targetProperties:
		s := NewStyle()
		for _, p := range t.props {
			s.Set(p, value)
		}
		return s
	case targetComputed:
		if s := t.fn(value, prop); s != nil {
			return s
		}
		return NewStyle()
	default:
		return NewStyle()
	}
}

func (t StyleTarget) validate() error {
	switch t.kind {
	case targetProperty, targetProperties:
		if len(t.props) == 0 {
			return errors.New("style lists no CSS properties")
		}
		for _, p := range t.props {
			if strings.TrimSpace(p) == "" {
				return errors.New("style contains an empty CSS property name")
			}
		}
		return nil
	case targetComputed:
		if t.fn == nil {
			return errors.New("computed style has no function")
		}
		return nil
	default:
		return errors.New("style is missing")
	}
}

// PropDefinition describes how one style prop maps to CSS.
type PropDefinition struct {
	// ThemeKey names the theme scale values are looked up in.
	ThemeKey string
	// Style is the CSS the resolved value turns into.
	Style StyleTarget
	// DefaultUnit is appended to numeric values (after theme lookup).
	DefaultUnit string
	// DefaultValue replaces a bare boolean true (<Flex wrap>).
	DefaultValue any
	// Variations derive further props sharing this definition's lookup rules,
	// e.g. pt/px from p. They are expanded when the theme is built.
	Variations map[string]StyleTarget
}

func (d PropDefinition) validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty prop name", ErrInvalidDefinition)
	}
	if err := d.Style.validate(); err != nil {
		return fmt.Errorf("%w: prop %q: %v", ErrInvalidDefinition, name, err)
	}
	if len(d.Variations) > 0 {
		return fmt.Errorf("%w: prop %q: variations were not expanded", ErrInvalidDefinition, name)
	}
	return nil
}
