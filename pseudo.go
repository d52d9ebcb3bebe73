package styleprops

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

type pseudoKind int

const (
	pseudoClass pseudoKind = iota
	pseudoElement
)

type pseudo struct {
	key      string // prop prefix as written: "focusWithin"
	kind     pseudoKind
	selector string // ":focus-within"
}

// pseudoTable is ordered longest key first (ties alphabetically), so the
// longest matching prefix wins: focusWithinColor routes to :focus-within,
// not :focus. No key may prefix a camelCase CSS property (backdropFilter,
// emptyCells, markerOffset), or that property would be routed.
var pseudoTable = buildPseudoTable(map[string]pseudoKind{
	"active":        pseudoClass,
	"checked":       pseudoClass,
	"default":       pseudoClass,
	"disabled":      pseudoClass,
	"enabled":       pseudoClass,
	"firstChild":    pseudoClass,
	"firstOfType":   pseudoClass,
	"focus":         pseudoClass,
	"focusVisible":  pseudoClass,
	"focusWithin":   pseudoClass,
	"hover":         pseudoClass,
	"indeterminate": pseudoClass,
	"inRange":       pseudoClass,
	"invalid":       pseudoClass,
	"lastChild":     pseudoClass,
	"lastOfType":    pseudoClass,
	"link":          pseudoClass,
	"onlyChild":     pseudoClass,
	"onlyOfType":    pseudoClass,
	"optional":      pseudoClass,
	"outOfRange":    pseudoClass,
	"readOnly":      pseudoClass,
	"readWrite":     pseudoClass,
	"required":      pseudoClass,
	"target":        pseudoClass,
	"valid":         pseudoClass,
	"visited":       pseudoClass,

	"after":       pseudoElement,
	"before":      pseudoElement,
	"firstLetter": pseudoElement,
	"firstLine":   pseudoElement,
	"placeholder": pseudoElement,
	"selection":   pseudoElement,
})

func buildPseudoTable(entries map[string]pseudoKind) []pseudo {
	table := make([]pseudo, 0, len(entries))
	for key, kind := range entries {
		prefix := ":"
		if kind == pseudoElement {
			prefix = "::"
		}
		table = append(table, pseudo{key: key, kind: kind, selector: prefix + kebabCase(key)})
	}
	slices.SortFunc(table, func(a, b pseudo) int {
		if c := cmp.Compare(len(b.key), len(a.key)); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})
	return table
}

// RoutePseudo splits a pseudo prop such as hoverColor into its selector
// (":hover") and the remaining prop name ("color"). The remainder must start
// with an upper-case letter; it is returned with that letter lower-cased.
func RoutePseudo(prop string) (selector, remainder string, ok bool) {
	for _, p := range pseudoTable {
		if !strings.HasPrefix(prop, p.key) {
			continue
		}
		rest := prop[len(p.key):]
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || !unicode.IsUpper(r) {
			continue
		}
		return p.selector, string(unicode.ToLower(r)) + rest[size:], true
	}
	return "", "", false
}

// PseudoSelectors lists the known selectors in routing order.
func PseudoSelectors() []string {
	out := make([]string, len(pseudoTable))
	for i, p := range pseudoTable {
		out[i] = p.selector
	}
	return out
}
