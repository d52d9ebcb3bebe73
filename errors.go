package styleprops

import "errors"

// Sentinel errors for theme construction and resolution.
var (
	ErrInvalidDefinition = errors.New("styleprops: invalid prop definition")
	ErrUnknownComputed   = errors.New("styleprops: unknown computed style")
	ErrInvalidTag        = errors.New("styleprops: invalid tag")
	ErrThemeFile         = errors.New("styleprops: invalid theme file")
)

// IsInvalidDefinition checks if err reports a malformed prop definition.
func IsInvalidDefinition(err error) bool {
	return errors.Is(err, ErrInvalidDefinition) || errors.Is(err, ErrUnknownComputed)
}

// IsInvalidTag checks if err reports a tag that cannot be used as a cache key.
func IsInvalidTag(err error) bool {
	return errors.Is(err, ErrInvalidTag)
}
