package styleprops

import (
	"fmt"
	"strings"
	"unicode"
)

// unitless CSS properties take bare numbers; every other number gets px.
var unitless = map[string]struct{}{
	"animationIterationCount": {},
	"aspectRatio":             {},
	"columnCount":             {},
	"columns":                 {},
	"flex":                    {},
	"flexGrow":                {},
	"flexShrink":              {},
	"fontWeight":              {},
	"gridArea":                {},
	"gridColumn":              {},
	"gridColumnEnd":           {},
	"gridColumnStart":         {},
	"gridRow":                 {},
	"gridRowEnd":              {},
	"gridRowStart":            {},
	"lineClamp":               {},
	"lineHeight":              {},
	"opacity":                 {},
	"order":                   {},
	"orphans":                 {},
	"tabSize":                 {},
	"widows":                  {},
	"zIndex":                  {},
	"zoom":                    {},
	"fillOpacity":             {},
	"strokeOpacity":           {},
	"strokeWidth":             {},
}

var vendorPrefixes = []string{"Webkit", "Moz", "ms", "O"}

// kebabCase converts a camelCase name to its CSS spelling. Vendor prefixes
// gain a leading dash (WebkitTransition -> -webkit-transition) and custom
// properties (--brand) are kept as is.
func kebabCase(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}

	var b strings.Builder
	for _, p := range vendorPrefixes {
		if len(name) > len(p) && strings.HasPrefix(name, p) && unicode.IsUpper(rune(name[len(p)])) {
			b.WriteByte('-')
			break
		}
	}

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CSSValue formats a declaration value for property.
func CSSValue(property string, v any) string {
	if n, ok := toNumber(v); ok {
		if _, bare := unitless[property]; bare || n == 0 {
			return formatNumber(n)
		}
		return formatNumber(n) + "px"
	}
	return fmt.Sprint(v)
}

// RenderCSS serializes style as CSS rules for selector.
//
// Plain declarations form the first rule. Nested scopes follow in style order:
// pseudo selectors (":hover") are appended to selector, keys containing '&'
// have it replaced by selector, media queries wrap their contents, and any
// other key becomes a descendant selector.
func RenderCSS(selector string, style *Style) string {
	var b strings.Builder
	renderRules(&b, selector, style, "")
	return b.String()
}

func renderRules(b *strings.Builder, selector string, style *Style, indent string) {
	var decls []string
	for _, k := range style.Keys() {
		v, _ := style.Get(k)
		if _, nested := v.(*Style); nested {
			continue
		}
		decls = append(decls, kebabCase(k)+": "+CSSValue(k, v)+";")
	}
	if len(decls) > 0 {
		b.WriteString(indent + selector + " {\n")
		for _, d := range decls {
			b.WriteString(indent + "  " + d + "\n")
		}
		b.WriteString(indent + "}\n")
	}

	for _, k := range style.Keys() {
		v, _ := style.Get(k)
		nested, ok := v.(*Style)
		if !ok || nested.Len() == 0 {
			continue
		}
		if strings.HasPrefix(k, "@") {
			b.WriteString(indent + k + " {\n")
			renderRules(b, selector, nested, indent+"  ")
			b.WriteString(indent + "}\n")
			continue
		}
		renderRules(b, nestedSelector(selector, k), nested, indent)
	}
}

func nestedSelector(parent, key string) string {
	switch {
	case strings.Contains(key, "&"):
		return strings.ReplaceAll(key, "&", parent)
	case strings.HasPrefix(key, ":"):
		return parent + key
	default:
		return parent + " " + key
	}
}
