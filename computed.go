package styleprops

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// computedStyles are the named computed styles theme files can refer to.
var computedStyles = map[string]ComputeFunc{
	"fraction-width":      fractionWidth,
	"aspect-ratio":        aspectRatio,
	"aspect-ratio-object": aspectRatioObject,
	"cover":               fixed("backgroundSize", "cover"),
	"contain":             fixed("backgroundSize", "contain"),
	"bg-center":           backgroundPosition("center center"),
	"bg-top":              backgroundPosition("top center"),
	"bg-right":            backgroundPosition("center right"),
	"bg-bottom":           backgroundPosition("bottom center"),
	"bg-left":             backgroundPosition("center left"),
	"outline":             outline,
	"border-radius":       borderRadius,
	"radius-top":          zeroRadius("borderBottomLeftRadius", "borderBottomRightRadius"),
	"radius-right":        zeroRadius("borderTopLeftRadius", "borderBottomLeftRadius"),
	"radius-bottom":       zeroRadius("borderTopLeftRadius", "borderTopRightRadius"),
	"radius-left":         zeroRadius("borderTopRightRadius", "borderBottomRightRadius"),
}

// ComputedStyle returns the registered computed style called name.
func ComputedStyle(name string) (StyleTarget, error) {
	fn, ok := computedStyles[name]
	if !ok {
		return StyleTarget{}, fmt.Errorf("%w: %q", ErrUnknownComputed, name)
	}
	t := Computed(fn)
	t.name = name
	return t, nil
}

func mustComputed(name string) StyleTarget {
	t, err := ComputedStyle(name)
	if err != nil {
		panic(err)
	}
	return t
}

// ComputedNames lists the registered computed styles.
func ComputedNames() []string {
	names := lo.Keys(computedStyles)
	slices.Sort(names)
	return names
}

// fractionWidth turns numbers up to 1 into a percentage (1/3 -> 33.33...%).
func fractionWidth(v any, _ string) *Style {
	if n, ok := toNumber(v); ok && n <= 1 {
		return NewStyle().Set("width", formatNumber(n*100)+"%")
	}
	return NewStyle().Set("width", v)
}

func aspectRatio(v any, _ string) *Style {
	n, ok := toNumber(v)
	if !ok || n == 0 {
		return nil
	}
	return NewStyle().
		Set("height", 0).
		Set("position", "relative").
		Set("paddingBottom", formatNumber(100/n)+"%")
}

func aspectRatioObject(any, string) *Style {
	return NewStyle().
		Set("position", "absolute").
		Set("top", 0).
		Set("right", 0).
		Set("bottom", 0).
		Set("left", 0).
		Set("width", "100%").
		Set("height", "100%").
		Set("zIndex", 100)
}

func fixed(property string, value any) ComputeFunc {
	return func(any, string) *Style {
		return NewStyle().Set(property, value)
	}
}

func backgroundPosition(position string) ComputeFunc {
	return func(any, string) *Style {
		return NewStyle().
			Set("backgroundRepeat", "no-repeat").
			Set("backgroundPosition", position)
	}
}

// outline: 0 removes it, true draws a default one, anything else is a color.
func outline(v any, _ string) *Style {
	var out any
	switch vv := v.(type) {
	case bool:
		out = "1px solid"
	case string:
		if vv == "" {
			out = "1px solid"
		} else {
			out = "1px solid " + vv
		}
	default:
		if n, ok := toNumber(v); ok && n == 0 {
			out = 0
		} else {
			out = fmt.Sprintf("1px solid %v", v)
		}
	}
	return NewStyle().Set("outline", out)
}

func borderRadius(v any, _ string) *Style {
	if v == "pill" {
		v = "9999px"
	}
	return NewStyle().Set("borderRadius", v)
}

func zeroRadius(properties ...string) ComputeFunc {
	return func(any, string) *Style {
		s := NewStyle()
		for _, p := range properties {
			s.Set(p, 0)
		}
		return s
	}
}
