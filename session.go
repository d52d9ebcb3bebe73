package styleprops

import (
	"fmt"

	"go.uber.org/zap"
)

// Session resolves components against one theme. It owns the component cache,
// so two sessions never share cached components or ordinals.
//
// A Session is safe for concurrent use.
type Session struct {
	theme   *Theme
	builder *Builder
	cache   *Cache
	log     *zap.Logger
}

// NewSession creates a session for theme; a nil theme means DefaultTheme().
func NewSession(theme *Theme, opts ...Option) *Session {
	if theme == nil {
		theme = DefaultTheme()
	}
	s := newSettings(opts)
	return &Session{
		theme:   theme,
		builder: NewBuilder(theme, opts...),
		cache:   NewCache(),
		log:     s.log.Named("session"),
	}
}

// Theme returns the session's theme.
func (s *Session) Theme() *Theme {
	return s.theme
}

// Cache returns the session's component cache.
func (s *Session) Cache() *Cache {
	return s.cache
}

// Builder returns the session's style builder.
func (s *Session) Builder() *Builder {
	return s.builder
}

// Resolve renders props for tag. A string, Tag or Component in the theme's
// tag prop replaces tag. Errors only concern the tag; prop content never fails.
func (s *Session) Resolve(tag Tag, props Props) (*Element, error) {
	if v, ok := props.Get(s.theme.options.TagProp); ok {
		switch v.(type) {
		case nil:
		case string, Tag, Component:
			if override := TagOf(v); !override.IsZero() {
				tag = override
			}
		default:
			return nil, fmt.Errorf("%w: %s prop has type %T", ErrInvalidTag, s.theme.options.TagProp, v)
		}
	}

	styled, err := s.cache.GetOrBuild(tag, func(ordinal int) *Styled {
		c := newStyled(tag, ordinal, s.builder)
		s.log.Debug("cached component",
			zap.Stringer("tag", tag),
			zap.String("name", c.DisplayName()))
		return c
	})
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", tag, err)
	}
	return styled.Render(props), nil
}

// ResolveMap is Resolve for props given as a map, in sorted name order.
func (s *Session) ResolveMap(tag Tag, props map[string]any) (*Element, error) {
	return s.Resolve(tag, PropsFromMap(props))
}
