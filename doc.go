// Package styleprops resolves component style props into style objects.
//
// A component receives props such as
//
//	p=2 bg=primary hoverColor=red w=[1, 0.5] href=/docs
//
// and the engine decides, per prop, whether it is a style input or a markup
// attribute. Style inputs are resolved against a Theme: shorthand names map to
// CSS properties (p -> padding), values are looked up in scales (space[2] ->
// 8), numbers gain a default unit, arrays are spread across breakpoint media
// queries and pseudo-prefixed props (hoverColor) are scoped to their selector.
// Everything else is forwarded to the element.
//
// Resolution happens in a Session, which owns the component cache for one
// theme:
//
//	s := styleprops.NewSession(styleprops.DefaultTheme())
//	el, err := s.Resolve(styleprops.ElementTag("div"), styleprops.Props{
//		{Name: "p", Value: 2},
//		{Name: "id", Value: "main"},
//	})
//	// el.Attrs: id=main
//	// el.CSS(): .tag-div-xxxxxxxx { padding: 8px; }
//
// A Provider keeps one session per theme for servers that style requests with
// different themes.
package styleprops
