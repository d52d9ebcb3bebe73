package styleprops

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// ExpandVariations gives every declared variation its own definition.
//
// A variation copies ThemeKey, DefaultUnit and DefaultValue from its parent and
// takes the variation's style target. The parent keeps its own style. No entry
// of the result carries Variations, so expanding an expanded set changes
// nothing. Parents are visited in name order; when a variation name collides
// with an explicitly declared prop the declared prop is kept. The input is not
// modified.
func ExpandVariations(defs map[string]PropDefinition) map[string]PropDefinition {
	out := make(map[string]PropDefinition, len(defs))
	for name, def := range defs {
		def.Variations = nil
		out[name] = def
	}

	parents := lo.Keys(defs)
	slices.Sort(parents)

	for _, name := range parents {
		parent := defs[name]
		variants := lo.Keys(parent.Variations)
		slices.Sort(variants)

		for _, variant := range variants {
			if _, declared := defs[variant]; declared {
				continue
			}
			out[variant] = PropDefinition{
				ThemeKey:     parent.ThemeKey,
				Style:        parent.Variations[variant],
				DefaultUnit:  parent.DefaultUnit,
				DefaultValue: parent.DefaultValue,
			}
		}
	}

	return out
}

// hasVariations reports whether any definition still declares variations.
func hasVariations(defs map[string]PropDefinition) bool {
	return slices.ContainsFunc(slices.Collect(maps.Values(defs)), func(d PropDefinition) bool {
		return len(d.Variations) > 0
	})
}
