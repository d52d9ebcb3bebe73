package styleprops

import (
	"fmt"
	"reflect"
)

// Component is a reference tag: another component that receives the resolved
// element instead of a markup element being rendered.
//
// Reference tags are cached by identity, so implementations must be
// non-nil pointers. Two structurally equal but distinct pointers are two
// different tags.
type Component interface {
	ComponentName() string
}

// Tag is the element type being styled: an element name ("div") or a
// Component reference.
type Tag struct {
	name string
	ref  Component
}

// ElementTag returns a tag for a markup element.
func ElementTag(name string) Tag {
	return Tag{name: name}
}

// ComponentTag returns a tag for a component reference.
func ComponentTag(c Component) Tag {
	return Tag{ref: c}
}

// TagOf converts a tag-prop value (string, Tag or Component) into a tag.
// Anything else, including the empty string, yields the zero Tag.
func TagOf(v any) Tag {
	switch t := v.(type) {
	case string:
		return ElementTag(t)
	case Tag:
		return t
	case Component:
		return ComponentTag(t)
	default:
		return Tag{}
	}
}

// Name returns the element name, or the component's name for reference tags.
func (t Tag) Name() string {
	if t.ref != nil {
		return t.ref.ComponentName()
	}
	return t.name
}

// IsReference reports whether the tag is a component reference.
func (t Tag) IsReference() bool {
	return t.ref != nil
}

// Component returns the referenced component, or nil for element tags.
func (t Tag) Component() Component {
	return t.ref
}

// IsZero reports whether the tag names nothing.
func (t Tag) IsZero() bool {
	return t.ref == nil && t.name == ""
}

func (t Tag) String() string {
	if t.ref == nil {
		return t.name
	}
	if v := reflect.ValueOf(t.ref); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Sprintf("nil(%T)", t.ref)
	}
	return fmt.Sprintf("%s(%T)", t.ref.ComponentName(), t.ref)
}

// validate rejects tags that cannot be cache keys. Reference tags must be
// pointers: any other kind either compares by value, so equal components
// would share an entry, or may hold an unhashable value behind an interface.
func (t Tag) validate() error {
	if t.IsZero() {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	if t.ref == nil {
		return nil
	}
	switch v := reflect.ValueOf(t.ref); v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return fmt.Errorf("%w: component %T is nil", ErrInvalidTag, t.ref)
		}
		return nil
	default:
		return fmt.Errorf("%w: component %T is not a pointer", ErrInvalidTag, t.ref)
	}
}
