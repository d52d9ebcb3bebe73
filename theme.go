package styleprops

import (
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Option defaults.
const (
	DefaultBreakpointsKey = "breakpoints"
	DefaultTagProp        = "is"
)

// Options are the engine settings a theme carries.
type Options struct {
	// ThemeBreakpointsKey names the scale holding responsive breakpoints.
	ThemeBreakpointsKey string
	// TagProp is the prop that overrides which element or component is rendered.
	TagProp string
	// MustSpecifyProps restricts style props to the theme's declared props.
	// When false, any prop that is not a valid attribute is a style prop.
	MustSpecifyProps bool
}

func (o Options) withDefaults() Options {
	if o.ThemeBreakpointsKey == "" {
		o.ThemeBreakpointsKey = DefaultBreakpointsKey
	}
	if o.TagProp == "" {
		o.TagProp = DefaultTagProp
	}
	return o
}

// Theme holds design-token scales, the custom prop definitions and the engine
// options. A theme is immutable once built.
type Theme struct {
	scales  map[string]*Scale
	defs    map[string]PropDefinition // as declared, before expansion
	props   map[string]PropDefinition // expanded
	options Options
	media   []string
}

// NewTheme builds a theme. Variations are expanded and every resulting
// definition is validated; all problems are reported together.
func NewTheme(scales map[string]*Scale, props map[string]PropDefinition, opts Options) (*Theme, error) {
	t := &Theme{
		scales:  maps.Clone(scales),
		defs:    maps.Clone(props),
		props:   ExpandVariations(props),
		options: opts.withDefaults(),
	}
	if t.scales == nil {
		t.scales = map[string]*Scale{}
	}
	if t.defs == nil {
		t.defs = map[string]PropDefinition{}
	}

	var errs error
	names := lo.Keys(t.props)
	slices.Sort(names)
	for _, name := range names {
		errs = multierr.Append(errs, t.props[name].validate(name))
	}
	if errs != nil {
		return nil, errs
	}

	t.media = mediaQueries(t.scales[t.options.ThemeBreakpointsKey])
	return t, nil
}

// MustTheme is NewTheme for static theme data. It panics on invalid definitions.
func MustTheme(scales map[string]*Scale, props map[string]PropDefinition, opts Options) *Theme {
	t, err := NewTheme(scales, props, opts)
	if err != nil {
		panic(fmt.Sprintf("styleprops: %v", err))
	}
	return t
}

// Extend returns a new theme with props added to (or replacing) the declared props.
func (t *Theme) Extend(props map[string]PropDefinition) (*Theme, error) {
	defs := maps.Clone(t.defs)
	maps.Copy(defs, props)
	return NewTheme(t.scales, defs, t.options)
}

// WithOptions returns a new theme using opts.
func (t *Theme) WithOptions(opts Options) (*Theme, error) {
	return NewTheme(t.scales, t.defs, opts)
}

// Options returns the effective options.
func (t *Theme) Options() Options {
	return t.options
}

// Scale returns the named scale.
func (t *Theme) Scale(name string) (*Scale, bool) {
	s, ok := t.scales[name]
	return s, ok
}

// ScaleNames returns the scale names in sorted order.
func (t *Theme) ScaleNames() []string {
	names := lo.Keys(t.scales)
	slices.Sort(names)
	return names
}

// Prop returns the expanded definition for name.
func (t *Theme) Prop(name string) (PropDefinition, bool) {
	d, ok := t.props[name]
	return d, ok
}

// IsCustomProp reports whether name has a definition.
func (t *Theme) IsCustomProp(name string) bool {
	_, ok := t.props[name]
	return ok
}

// PropNames returns the expanded prop names in sorted order.
func (t *Theme) PropNames() []string {
	names := lo.Keys(t.props)
	slices.Sort(names)
	return names
}

// MediaQueries returns one media query per breakpoint, in breakpoint order.
func (t *Theme) MediaQueries() []string {
	return slices.Clone(t.media)
}

// lookup resolves value against the themeKey scale. Negative numbers look up
// their absolute value and negate a numeric result. Misses return value unchanged.
func (t *Theme) lookup(themeKey string, value any) (any, bool) {
	scale, ok := t.scales[themeKey]
	if !ok {
		return value, false
	}

	key := value
	negative := isNegative(value)
	if negative {
		n, _ := toNumber(value)
		key = -n
	}

	found, ok := scale.Lookup(key)
	if !ok {
		return value, false
	}
	if negative {
		n, ok := toNumber(found)
		if !ok {
			return value, false
		}
		return -n, true
	}
	return found, true
}

// MediaQuery formats a min-width media query for one breakpoint.
func MediaQuery(breakpoint any) string {
	bp := fmt.Sprint(breakpoint)
	if n, ok := toNumber(breakpoint); ok {
		bp = formatNumber(n) + "px"
	}
	return "@media screen and (min-width: " + bp + ")"
}

func mediaQueries(breakpoints *Scale) []string {
	values := breakpoints.Values()
	out := make([]string, 0, len(values))
	for _, bp := range values {
		out = append(out, MediaQuery(bp))
	}
	return out
}
