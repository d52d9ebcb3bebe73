package styleprops

import "go.uber.org/zap"

// bookkeepingProps never become CSS. The theme's tag prop is added per builder.
var bookkeepingProps = []string{"children", "className", "innerRef", "key", "ref", "theme"}

// Option configures builders, sessions and providers.
type Option func(*settings)

type settings struct {
	log   *zap.Logger
	valid AttributeValidator
}

// WithLogger sets the logger. Resolution events are logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAttributeValidator replaces the attribute whitelist. The style
// attributes (color, width, ...) are removed from v.
func WithAttributeValidator(v AttributeValidator) Option {
	return func(s *settings) {
		if v != nil {
			s.valid = WithoutStyleAttributes(v)
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{log: zap.NewNop(), valid: DefaultAttributeValidator}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Builder turns props into a style object for one theme. It holds no mutable
// state and is safe for concurrent use.
type Builder struct {
	theme *Theme
	valid AttributeValidator
	log   *zap.Logger
	media []string
	skip  map[string]struct{}
}

// NewBuilder creates a builder for theme; a nil theme means DefaultTheme().
func NewBuilder(theme *Theme, opts ...Option) *Builder {
	if theme == nil {
		theme = DefaultTheme()
	}
	s := newSettings(opts)

	skip := make(map[string]struct{}, len(bookkeepingProps)+1)
	for _, name := range bookkeepingProps {
		skip[name] = struct{}{}
	}
	skip[theme.options.TagProp] = struct{}{}

	return &Builder{
		theme: theme,
		valid: s.valid,
		log:   s.log.Named("builder"),
		media: theme.MediaQueries(),
		skip:  skip,
	}
}

// Theme returns the builder's theme.
func (b *Builder) Theme() *Theme {
	return b.theme
}

// IsStyleProp reports whether name is consumed as style input rather than
// forwarded as an attribute.
func (b *Builder) IsStyleProp(name string) bool {
	if _, skip := b.skip[name]; skip {
		return false
	}
	if b.theme.IsCustomProp(name) {
		return true
	}
	if b.theme.options.MustSpecifyProps {
		return false
	}
	return !b.valid(name)
}

// Build resolves props into a style object. It never fails: unresolvable
// values fall back to the raw value and surplus responsive values are dropped.
// Media query scopes come last, in breakpoint order.
func (b *Builder) Build(props Props) *Style {
	out := b.build(props, true)
	out.moveToEnd(b.media)
	return out
}

func (b *Builder) build(props Props, routePseudo bool) *Style {
	out := NewStyle()

	for _, prop := range props {
		if !b.IsStyleProp(prop.Name) {
			continue
		}

		def, custom := b.theme.Prop(prop.Name)
		if !custom {
			if selector, remainder, ok := RoutePseudo(prop.Name); ok {
				if !routePseudo {
					b.log.Debug("nested pseudo prop ignored", zap.String("prop", prop.Name))
					continue
				}
				nested := b.build(Props{{Name: remainder, Value: prop.Value}}, false)
				if nested.Len() > 0 {
					nested.moveToEnd(b.media)
					out.Scope(selector).Merge(nested)
				}
				continue
			}
			def = PropDefinition{Style: Property(prop.Name)}
		}

		b.apply(out, prop.Name, def, prop.Value)
	}

	return out
}

// apply writes one prop into out. Index 0 of a responsive value is the base
// style; index i is scoped to the (i-1)th breakpoint.
func (b *Builder) apply(out *Style, name string, def PropDefinition, value any) {
	values := responsiveValues(value)
	for i, v := range values {
		if i > len(b.media) {
			b.log.Debug("responsive values exceed breakpoints",
				zap.String("prop", name),
				zap.Int("values", len(values)),
				zap.Int("breakpoints", len(b.media)))
			return
		}

		fragment := b.fragment(name, def, v)
		if fragment == nil {
			continue
		}
		if i == 0 {
			out.Merge(fragment)
		} else {
			out.Scope(b.media[i-1]).Merge(fragment)
		}
	}
}

// fragment resolves a single value. nil means the value contributes nothing.
func (b *Builder) fragment(name string, def PropDefinition, v any) *Style {
	switch bv := v.(type) {
	case nil:
		return nil
	case bool:
		switch {
		case !bv:
			return nil
		case def.DefaultValue != nil:
			v = def.DefaultValue
		case !def.Style.IsComputed():
			return nil
		}
	}
	v = normalizeValue(v)

	if def.ThemeKey != "" {
		resolved, ok := b.theme.lookup(def.ThemeKey, v)
		if !ok {
			b.log.Debug("theme lookup missed",
				zap.String("prop", name),
				zap.String("themeKey", def.ThemeKey),
				zap.Any("value", v))
		}
		v = resolved
	}

	if def.DefaultUnit != "" {
		if n, ok := toNumber(v); ok {
			v = formatNumber(n) + def.DefaultUnit
		}
	}

	return def.Style.Apply(v, name)
}
