package styleprops

import "sync"

// DefaultTheme returns the built-in theme: four breakpoints, a space scale, a
// font-size scale and a small set of shorthand props (f, color, bg,
// borderColor, d, p and m with directional variations, h, w).
//
// The returned theme is shared; derive variants with Extend or WithOptions.
func DefaultTheme() *Theme {
	return defaultTheme()
}

var defaultTheme = sync.OnceValue(func() *Theme {
	return MustTheme(DefaultScales(), DefaultProps(), Options{})
})

// DefaultScales returns a fresh copy of the default theme's scales.
func DefaultScales() map[string]*Scale {
	return map[string]*Scale{
		"breakpoints": List("576px", "768px", "992px", "1200px"),
		"space":       List(0, 4, 8, 16, 32, 64, 128, 256, 512),
		"fontSizes":   List(12, 14, 16, 20, 24, 32, 48, 64, 72),
	}
}

// DefaultProps returns a fresh copy of the default prop definitions.
func DefaultProps() map[string]PropDefinition {
	return map[string]PropDefinition{
		"f": {
			ThemeKey:    "fontSizes",
			DefaultUnit: "px",
			Style:       Property("fontSize"),
		},
		"color": {
			ThemeKey: "colors",
			Style:    Property("color"),
		},
		"bg": {
			ThemeKey: "colors",
			Style:    Property("backgroundColor"),
		},
		"borderColor": {
			ThemeKey: "colors",
			Style:    Property("borderColor"),
		},
		"d": {
			Style: Property("display"),
		},
		"p": {
			ThemeKey:    "space",
			DefaultUnit: "px",
			Style:       Property("padding"),
			Variations: map[string]StyleTarget{
				"pt": Property("paddingTop"),
				"pr": Property("paddingRight"),
				"pb": Property("paddingBottom"),
				"pl": Property("paddingLeft"),
				"px": Properties("paddingLeft", "paddingRight"),
				"py": Properties("paddingTop", "paddingBottom"),
			},
		},
		"m": {
			ThemeKey:    "space",
			DefaultUnit: "px",
			Style:       Property("margin"),
			Variations: map[string]StyleTarget{
				"mt": Property("marginTop"),
				"mr": Property("marginRight"),
				"mb": Property("marginBottom"),
				"ml": Property("marginLeft"),
				"mx": Properties("marginLeft", "marginRight"),
				"my": Properties("marginTop", "marginBottom"),
			},
		},
		"h": {
			Style: Property("height"),
		},
		"w": {
			Style: mustComputed("fraction-width"),
		},
	}
}
