package styleprops

// TachyonsProps returns prop definitions modelled on the Tachyons utility
// classes. Merge them into a theme with Theme.Extend:
//
//	theme, err := styleprops.DefaultTheme().Extend(styleprops.TachyonsProps())
//
// br looks values up in a "radii" scale and bw in "space"; both fall back to
// the raw value when the scale is missing.
func TachyonsProps() map[string]PropDefinition {
	return map[string]PropDefinition{
		"aspectRatio":       {Style: mustComputed("aspect-ratio")},
		"aspectRatioObject": {Style: mustComputed("aspect-ratio-object")},
		"cover":             {Style: mustComputed("cover")},
		"contain":           {Style: mustComputed("contain")},
		"bgCenter":          {Style: mustComputed("bg-center")},
		"bgTop":             {Style: mustComputed("bg-top")},
		"bgRight":           {Style: mustComputed("bg-right")},
		"bgBottom":          {Style: mustComputed("bg-bottom")},
		"bgLeft":            {Style: mustComputed("bg-left")},
		"outline":           {Style: mustComputed("outline")},
		"b": {
			ThemeKey: "colors",
			Style:    Property("borderColor"),
		},
		"br": {
			ThemeKey: "radii",
			Style:    mustComputed("border-radius"),
		},
		"brTop":    {Style: mustComputed("radius-top")},
		"brRight":  {Style: mustComputed("radius-right")},
		"brBottom": {Style: mustComputed("radius-bottom")},
		"brLeft":   {Style: mustComputed("radius-left")},
		"bw": {
			ThemeKey: "space",
			Style:    Property("borderWidth"),
		},
	}
}
