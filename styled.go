package styleprops

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Styled is the cached wrapper for one tag. It builds the style for each set
// of props and decides which props reach the underlying element.
type Styled struct {
	tag     Tag
	ordinal int
	name    string
	prefix  string
	builder *Builder
}

func newStyled(tag Tag, ordinal int, builder *Builder) *Styled {
	s := &Styled{tag: tag, ordinal: ordinal, builder: builder}
	if tag.IsReference() {
		s.name = fmt.Sprintf("Tag()-%d", ordinal)
		s.prefix = fmt.Sprintf("tag-c%d", ordinal)
	} else {
		s.name = "Tag-" + tag.name
		s.prefix = "tag-" + classSafe(tag.name)
	}
	return s
}

// Tag returns the wrapped tag.
func (s *Styled) Tag() Tag {
	return s.tag
}

// DisplayName is "Tag-<element>" for element tags and "Tag()-<ordinal>" for
// reference tags. It does not depend on the component's own name, so it is the
// same wherever the cache is filled in the same order.
func (s *Styled) DisplayName() string {
	return s.name
}

// Ordinal returns the reference ordinal, or -1 for element tags.
func (s *Styled) Ordinal() int {
	return s.ordinal
}

// Render resolves props into an element.
func (s *Styled) Render(props Props) *Element {
	style := s.builder.Build(props)

	el := &Element{
		Tag:       s.tag,
		Component: s.name,
		Attrs:     s.forward(props),
		Style:     style,
	}

	var classes []string
	if v, ok := props.Get("className"); ok {
		if cn, ok := v.(string); ok && cn != "" {
			classes = append(classes, cn)
		}
	}
	if style.Len() > 0 {
		el.class = s.prefix + "-" + styleHash(style)
		classes = append(classes, el.class)
	}
	el.ClassName = strings.Join(classes, " ")

	return el
}

// forward selects the props passed on. Element tags get valid attributes that
// are not custom props; reference tags get everything except the tag prop.
func (s *Styled) forward(props Props) Props {
	tagProp := s.builder.theme.options.TagProp
	out := make(Props, 0, len(props))
	for _, p := range props {
		if p.Name == tagProp || p.Name == "className" {
			continue
		}
		if !s.tag.IsReference() {
			if s.builder.theme.IsCustomProp(p.Name) || !s.builder.valid(p.Name) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// styleHash is a short digest of the serialized style, independent of the
// class it ends up on.
func styleHash(style *Style) string {
	return fmt.Sprintf("%08x", uint32(xxhash.Sum64String(RenderCSS("&", style))))
}

// classSafe keeps letters, digits, '-' and '_', replacing anything else with '-'.
func classSafe(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
