package styleprops

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Style is an insertion-ordered style object.
//
// Values are strings, float64 numbers or nested *Style scopes keyed by a media
// query ("@media screen and (min-width: 768px)") or a pseudo selector (":hover").
// Order matters: later declarations win in the emitted CSS, and class names are
// derived from the serialized form.
type Style struct {
	keys   []string
	values map[string]any
}

// NewStyle returns an empty style.
func NewStyle() *Style {
	return &Style{values: make(map[string]any)}
}

// Set stores value under key. A key that already exists keeps its position.
// Numeric values are stored as float64.
func (s *Style) Set(key string, value any) *Style {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = normalizeValue(value)
	return s
}

// Get returns the value stored under key.
func (s *Style) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s *Style) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Len returns the number of top-level keys.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Delete removes key, if present.
func (s *Style) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Scope returns the nested style stored under key, creating it when missing.
// A non-style value under key is replaced.
func (s *Style) Scope(key string) *Style {
	if nested, ok := s.values[key].(*Style); ok {
		return nested
	}
	nested := NewStyle()
	s.Set(key, nested)
	return nested
}

// Merge copies every top-level entry of other into s, replacing existing
// values. Nested scopes are copied, so s never shares a *Style with other.
func (s *Style) Merge(other *Style) *Style {
	if other == nil {
		return s
	}
	for _, k := range other.keys {
		v := other.values[k]
		if nested, ok := v.(*Style); ok {
			v = nested.Clone()
		}
		s.Set(k, v)
	}
	return s
}

// Clone returns a deep copy.
func (s *Style) Clone() *Style {
	out := NewStyle()
	if s == nil {
		return out
	}
	for _, k := range s.keys {
		v := s.values[k]
		if nested, ok := v.(*Style); ok {
			v = nested.Clone()
		}
		out.Set(k, v)
	}
	return out
}

// Map converts the style into plain nested maps.
func (s *Style) Map() map[string]any {
	out := make(map[string]any, s.Len())
	if s == nil {
		return out
	}
	for _, k := range s.keys {
		v := s.values[k]
		if nested, ok := v.(*Style); ok {
			out[k] = nested.Map()
			continue
		}
		out[k] = v
	}
	return out
}

// moveToEnd re-appends keys, in the given order, after every other key.
// Keys that are not present are ignored.
func (s *Style) moveToEnd(keys []string) {
	for _, k := range keys {
		if _, ok := s.values[k]; !ok {
			continue
		}
		s.keys = slices.DeleteFunc(s.keys, func(existing string) bool { return existing == k })
		s.keys = append(s.keys, k)
	}
}

// MarshalJSON encodes the style as a JSON object preserving key order.
func (s *Style) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if s != nil {
		for i, k := range s.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(s.values[k])
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
