package styleprops

import (
	"slices"

	"github.com/samber/lo"
)

// Prop is one author-supplied component input.
type Prop struct {
	Name  string
	Value any
}

// Props is an ordered prop list. Order decides which prop wins when two props
// write the same CSS property.
type Props []Prop

// PropsFromMap builds a prop list in sorted name order.
func PropsFromMap(m map[string]any) Props {
	names := lo.Keys(m)
	slices.Sort(names)
	out := make(Props, 0, len(names))
	for _, n := range names {
		out = append(out, Prop{Name: n, Value: m[n]})
	}
	return out
}

// Get returns the value of the last prop called name.
func (p Props) Get(name string) (any, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Name == name {
			return p[i].Value, true
		}
	}
	return nil, false
}

// With returns a copy with name set to value, replacing an existing prop in place.
func (p Props) With(name string, value any) Props {
	out := slices.Clone(p)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Prop{Name: name, Value: value})
}

// Without returns a copy without any prop called name.
func (p Props) Without(name string) Props {
	return lo.Filter(p, func(prop Prop, _ int) bool { return prop.Name != name })
}

// Names returns the prop names in order.
func (p Props) Names() []string {
	return lo.Map(p, func(prop Prop, _ int) string { return prop.Name })
}

// Map converts the list to a map; later duplicates win.
func (p Props) Map() map[string]any {
	m := make(map[string]any, len(p))
	for _, prop := range p {
		m[prop.Name] = prop.Value
	}
	return m
}
