package styleprops

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"
)

// Scale is a named sequence of design tokens (space, fontSizes, colors, ...).
//
// A scale holds positional values, addressed by index, and named values,
// addressed by key. Values may themselves be scales, so a color scale can hold
// "blue" as a list of shades and be addressed as "blue.2".
type Scale struct {
	list  []any
	named map[string]any
}

// List builds a positional scale. []any and map[string]any values become
// nested scales.
func List(values ...any) *Scale {
	s := &Scale{named: map[string]any{}}
	for _, v := range values {
		s.list = append(s.list, nest(v))
	}
	return s
}

// Named builds a keyed scale. []any and map[string]any values become nested
// scales.
func Named(values map[string]any) *Scale {
	s := &Scale{named: make(map[string]any, len(values))}
	for k, v := range values {
		s.named[k] = nest(v)
	}
	return s
}

func nest(v any) any {
	switch vv := v.(type) {
	case []any:
		return List(vv...)
	case map[string]any:
		return Named(vv)
	}
	return normalizeValue(v)
}

// ScaleFrom converts decoded document data ([]any, map[string]any, nested
// combinations) into a scale.
func ScaleFrom(v any) (*Scale, error) {
	switch vv := v.(type) {
	case *Scale:
		return vv, nil
	case []any:
		s := List()
		for i, item := range vv {
			conv, err := scaleValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			s.list = append(s.list, conv)
		}
		return s, nil
	case map[string]any:
		s := Named(nil)
		for k, item := range vv {
			conv, err := scaleValue(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			s.named[k] = conv
		}
		return s, nil
	default:
		return nil, fmt.Errorf("scale must be a list or a mapping, got %T", v)
	}
}

func scaleValue(v any) (any, error) {
	switch v.(type) {
	case []any, map[string]any:
		return ScaleFrom(v)
	case nil:
		return nil, fmt.Errorf("empty scale value")
	}
	return normalizeValue(v), nil
}

// Len returns the number of positional values.
func (s *Scale) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// Values returns a copy of the positional values.
func (s *Scale) Values() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.list))
	copy(out, s.list)
	return out
}

// NamedValues returns a copy of the keyed values.
func (s *Scale) NamedValues() map[string]any {
	if s == nil {
		return nil
	}
	return maps.Clone(s.named)
}

// Lookup resolves key against the scale. Integer keys index the positional
// values; string keys are a dot-separated path where each segment is a name
// or a decimal index. Lookups that end on a nested scale miss.
func (s *Scale) Lookup(key any) (any, bool) {
	if s == nil {
		return nil, false
	}
	if n, ok := toNumber(key); ok {
		if n != math.Trunc(n) {
			return nil, false
		}
		if v, ok := s.index(int(n)); ok {
			return v, true
		}
		key = formatNumber(n)
	}
	path, ok := key.(string)
	if !ok || path == "" {
		return nil, false
	}

	current := s
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		v, found := current.segment(seg)
		if !found {
			return nil, false
		}
		if i == len(segments)-1 {
			if _, nested := v.(*Scale); nested {
				return nil, false
			}
			return v, true
		}
		next, ok := v.(*Scale)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

func (s *Scale) segment(seg string) (any, bool) {
	if v, ok := s.named[seg]; ok {
		return v, true
	}
	if i, err := strconv.Atoi(seg); err == nil {
		return s.index(i)
	}
	return nil, false
}

func (s *Scale) index(i int) (any, bool) {
	if i < 0 || i >= len(s.list) {
		return nil, false
	}
	return s.list[i], true
}
