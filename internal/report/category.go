package report

import (
	"sort"
	"strings"

	"github.com/yacobolo/styleprops"
)

// Category groups props in the props table by what their CSS affects.
type Category string

// Categories, in display order.
const (
	CategoryLayout     Category = "Layout"
	CategoryVisual     Category = "Visual"
	CategoryTypography Category = "Typography"
	CategoryEffects    Category = "Effects"
	CategoryComputed   Category = "Computed"
)

var categoryOrder = []Category{
	CategoryLayout, CategoryVisual, CategoryTypography, CategoryEffects, CategoryComputed,
}

// propertyCategories maps CSS properties (camelCase) that prefix matching
// would put in the wrong group.
var propertyCategories = map[string]Category{
	"color":           CategoryVisual,
	"opacity":         CategoryVisual,
	"fill":            CategoryVisual,
	"stroke":          CategoryVisual,
	"boxShadow":       CategoryVisual,
	"lineHeight":      CategoryTypography,
	"letterSpacing":   CategoryTypography,
	"whiteSpace":      CategoryTypography,
	"wordBreak":       CategoryTypography,
	"hyphens":         CategoryTypography,
	"filter":          CategoryEffects,
	"backdropFilter":  CategoryEffects,
	"mixBlendMode":    CategoryEffects,
	"clipPath":        CategoryEffects,
	"transform":       CategoryEffects,
	"transformOrigin": CategoryEffects,
}

var categoryPrefixes = []struct {
	prefix   string
	category Category
}{
	{"background", CategoryVisual},
	{"border", CategoryVisual},
	{"outline", CategoryVisual},
	{"font", CategoryTypography},
	{"text", CategoryTypography},
	{"transition", CategoryEffects},
	{"animation", CategoryEffects},
}

// categorizeProperty determines the category of a CSS property. Anything
// unrecognized is layout.
func categorizeProperty(name string) Category {
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryLayout
}

// categorizeProp determines the category of a prop from the first CSS
// property it writes. Computed styles have their own group.
func categorizeProp(def styleprops.PropDefinition) Category {
	if def.Style.IsComputed() {
		return CategoryComputed
	}
	props := def.Style.CSSProperties()
	if len(props) == 0 {
		return CategoryLayout
	}
	return categorizeProperty(props[0])
}

// categorizeProps groups prop names by category, sorted within each group.
func categorizeProps(theme *styleprops.Theme) map[Category][]string {
	result := make(map[Category][]string)
	for _, name := range theme.PropNames() {
		def, _ := theme.Prop(name)
		cat := categorizeProp(def)
		result[cat] = append(result[cat], name)
	}

	for cat := range result {
		sort.Strings(result[cat])
	}

	return result
}
