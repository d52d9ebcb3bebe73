package styleprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	media576 = "@media screen and (min-width: 576px)"
	media768 = "@media screen and (min-width: 768px)"
	media992 = "@media screen and (min-width: 992px)"
)

func testTheme(t *testing.T, props map[string]PropDefinition) *Theme {
	t.Helper()
	theme, err := NewTheme(map[string]*Scale{
		"breakpoints": List("576px", "768px", "992px"),
		"space":       List(0, 4, 8, 16),
		"colors":      Named(map[string]any{"primary": "#07c", "gray": []any{"#eee", "#999"}}),
	}, props, Options{})
	require.NoError(t, err)
	return theme
}

func TestBuildDefaultTheme(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  map[string]any
	}{
		{
			name:  "space scale with default unit",
			props: Props{{Name: "p", Value: 2}},
			want:  map[string]any{"padding": "8px"},
		},
		{
			name:  "directional variation",
			props: Props{{Name: "px", Value: 3}},
			want:  map[string]any{"paddingLeft": "16px", "paddingRight": "16px"},
		},
		{
			name:  "negative margin",
			props: Props{{Name: "mt", Value: -2}},
			want:  map[string]any{"marginTop": "-8px"},
		},
		{
			name:  "out of scale value falls back to raw",
			props: Props{{Name: "m", Value: 13}},
			want:  map[string]any{"margin": "13px"},
		},
		{
			name:  "string value is kept",
			props: Props{{Name: "p", Value: "1em"}},
			want:  map[string]any{"padding": "1em"},
		},
		{
			name:  "missing colors scale passes value through",
			props: Props{{Name: "bg", Value: "tomato"}},
			want:  map[string]any{"backgroundColor": "tomato"},
		},
		{
			name:  "fraction width",
			props: Props{{Name: "w", Value: 0.5}},
			want:  map[string]any{"width": "50%"},
		},
		{
			name:  "absolute width",
			props: Props{{Name: "w", Value: 200}},
			want:  map[string]any{"width": float64(200)},
		},
		{
			name:  "unknown name is a literal CSS property",
			props: Props{{Name: "textTransform", Value: "uppercase"}},
			want:  map[string]any{"textTransform": "uppercase"},
		},
		{
			name:  "blacklisted attribute becomes CSS",
			props: Props{{Name: "height", Value: "100vh"}},
			want:  map[string]any{"height": "100vh"},
		},
		{
			name:  "valid attribute is not CSS",
			props: Props{{Name: "id", Value: "main"}, {Name: "href", Value: "/"}},
			want:  map[string]any{},
		},
		{
			name: "bookkeeping props are not CSS",
			props: Props{
				{Name: "is", Value: "span"},
				{Name: "className", Value: "x"},
				{Name: "innerRef", Value: 1},
				{Name: "theme", Value: "dark"},
			},
			want: map[string]any{},
		},
		{
			name:  "nil and false emit nothing",
			props: Props{{Name: "p", Value: nil}, {Name: "m", Value: false}},
			want:  map[string]any{},
		},
		{
			name:  "bare true without default emits nothing",
			props: Props{{Name: "d", Value: true}},
			want:  map[string]any{},
		},
	}

	b := NewBuilder(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Build(tt.props).Map())
		})
	}
}

func TestBuildNegativeLookup(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"gap":   {ThemeKey: "space", Style: Property("gap")},
		"color": {ThemeKey: "colors", Style: Property("color")},
	})
	b := NewBuilder(theme)

	assert.Equal(t, map[string]any{"gap": float64(-8)}, b.Build(Props{{Name: "gap", Value: -2}}).Map())
	assert.Equal(t, map[string]any{"gap": float64(8)}, b.Build(Props{{Name: "gap", Value: 2}}).Map())
	assert.Equal(t, map[string]any{"color": "#999"}, b.Build(Props{{Name: "color", Value: "gray.1"}}).Map())
	assert.Equal(t, map[string]any{"color": "#07c"}, b.Build(Props{{Name: "color", Value: "primary"}}).Map())
}

func TestBuildDefaultUnit(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"size": {DefaultUnit: "px", Style: Properties("width", "height")},
		"lh":   {DefaultUnit: "em", Style: Property("lineHeight")},
	})
	b := NewBuilder(theme)

	assert.Equal(t, map[string]any{"width": "10px", "height": "10px"}, b.Build(Props{{Name: "size", Value: 10}}).Map())
	assert.Equal(t, map[string]any{"lineHeight": "1.5em"}, b.Build(Props{{Name: "lh", Value: 1.5}}).Map())
	assert.Equal(t, map[string]any{"lineHeight": "normal"}, b.Build(Props{{Name: "lh", Value: "normal"}}).Map())
}

func TestBuildFanOut(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"mx": {Style: Properties("marginLeft", "marginRight")},
	})
	got := NewBuilder(theme).Build(Props{{Name: "mx", Value: 10}})

	assert.Equal(t, []string{"marginLeft", "marginRight"}, got.Keys())
	assert.Equal(t, map[string]any{"marginLeft": float64(10), "marginRight": float64(10)}, got.Map())
}

func TestBuildBooleanDefault(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"wrap": {Style: Property("flexWrap"), DefaultValue: "wrap"},
	})
	b := NewBuilder(theme)

	assert.Equal(t, map[string]any{"flexWrap": "wrap"}, b.Build(Props{{Name: "wrap", Value: true}}).Map())
	assert.Equal(t, map[string]any{"flexWrap": "nowrap"}, b.Build(Props{{Name: "wrap", Value: "nowrap"}}).Map())
	assert.Equal(t, map[string]any{}, b.Build(Props{{Name: "wrap", Value: false}}).Map())
}

func TestBuildResponsive(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"p": {ThemeKey: "space", DefaultUnit: "px", Style: Property("padding")},
		"d": {Style: Property("display")},
	})
	b := NewBuilder(theme)

	t.Run("values map onto breakpoints in order", func(t *testing.T) {
		got := b.Build(Props{{Name: "p", Value: []int{1, 2, 3}}})
		assert.Equal(t, []string{"padding", media576, media768}, got.Keys())
		assert.Equal(t, map[string]any{
			"padding": "4px",
			media576:  map[string]any{"padding": "8px"},
			media768:  map[string]any{"padding": "16px"},
		}, got.Map())
	})

	t.Run("media scopes come after base declarations", func(t *testing.T) {
		got := b.Build(Props{
			{Name: "p", Value: []any{0, nil, 2}},
			{Name: "d", Value: []any{"block", "flex"}},
		})
		assert.Equal(t, []string{"padding", "display", media576, media768}, got.Keys())
		assert.Equal(t, map[string]any{
			"padding": "0px",
			"display": "block",
			media576:  map[string]any{"display": "flex"},
			media768:  map[string]any{"padding": "8px"},
		}, got.Map())
	})

	t.Run("surplus values are dropped", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		b := NewBuilder(theme, WithLogger(zap.New(core)))

		got := b.Build(Props{{Name: "d", Value: []string{"a", "b", "c", "d", "e", "f"}}})
		assert.Equal(t, []string{"display", media576, media768, media992}, got.Keys())
		require.Equal(t, 1, logs.FilterMessage("responsive values exceed breakpoints").Len())
	})
}

func TestBuildPseudo(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"color": {ThemeKey: "colors", Style: Property("color")},
		"bg":    {ThemeKey: "colors", Style: Property("backgroundColor")},
		"hoverable": {Style: Computed(func(v any, _ string) *Style {
			return NewStyle().Set("cursor", "pointer")
		})},
	})
	b := NewBuilder(theme)

	tests := []struct {
		name  string
		props Props
		want  map[string]any
	}{
		{
			name:  "pseudo class",
			props: Props{{Name: "hoverColor", Value: "red"}},
			want:  map[string]any{":hover": map[string]any{"color": "red"}},
		},
		{
			name:  "remainder resolves through the theme",
			props: Props{{Name: "focusBg", Value: "primary"}},
			want:  map[string]any{":focus": map[string]any{"backgroundColor": "#07c"}},
		},
		{
			name:  "longest prefix wins",
			props: Props{{Name: "focusWithinColor", Value: "red"}},
			want:  map[string]any{":focus-within": map[string]any{"color": "red"}},
		},
		{
			name:  "pseudo element",
			props: Props{{Name: "placeholderColor", Value: "gray.0"}},
			want:  map[string]any{"::placeholder": map[string]any{"color": "#eee"}},
		},
		{
			name: "same selector merges",
			props: Props{
				{Name: "hoverColor", Value: "red"},
				{Name: "hoverBg", Value: "blue"},
			},
			want: map[string]any{":hover": map[string]any{"color": "red", "backgroundColor": "blue"}},
		},
		{
			name:  "responsive pseudo",
			props: Props{{Name: "hoverColor", Value: []string{"red", "blue"}}},
			want: map[string]any{":hover": map[string]any{
				"color":  "red",
				media576: map[string]any{"color": "blue"},
			}},
		},
		{
			name:  "custom prop is never routed",
			props: Props{{Name: "hoverable", Value: true}},
			want:  map[string]any{"cursor": "pointer"},
		},
		{
			name:  "lower-case remainder is not a pseudo prop",
			props: Props{{Name: "hovercolor", Value: "red"}},
			want:  map[string]any{"hovercolor": "red"},
		},
		{
			name:  "nested pseudo props are dropped",
			props: Props{{Name: "hoverFocusColor", Value: "red"}},
			want:  map[string]any{},
		},
		{
			name:  "attribute remainder is dropped",
			props: Props{{Name: "hoverHref", Value: "/"}},
			want:  map[string]any{},
		},
		{
			name: "css properties sharing a pseudo-like prefix are not routed",
			props: Props{
				{Name: "backdropFilter", Value: "blur(4px)"},
				{Name: "emptyCells", Value: "hide"},
				{Name: "markerOffset", Value: "1em"},
			},
			want: map[string]any{
				"backdropFilter": "blur(4px)",
				"emptyCells":     "hide",
				"markerOffset":   "1em",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Build(tt.props).Map())
		})
	}
}

func TestBuildLaterPropWins(t *testing.T) {
	got := NewBuilder(nil).Build(Props{
		{Name: "p", Value: 1},
		{Name: "pt", Value: 3},
		{Name: "padding", Value: "2px"},
	})
	assert.Equal(t, []string{"padding", "paddingTop"}, got.Keys())
	assert.Equal(t, map[string]any{"padding": "2px", "paddingTop": "16px"}, got.Map())
}

func TestIsStyleProp(t *testing.T) {
	theme := testTheme(t, map[string]PropDefinition{
		"title": {Style: Property("content")},
	})

	tests := []struct {
		name string
		prop string
		opts Options
		want bool
	}{
		{name: "custom prop", prop: "title", want: true},
		{name: "valid attribute", prop: "href", want: false},
		{name: "data attribute", prop: "data-id", want: false},
		{name: "event handler", prop: "onClick", want: false},
		{name: "style attribute", prop: "width", want: true},
		{name: "unknown name", prop: "boxShadow", want: true},
		{name: "tag prop", prop: "is", want: false},
		{name: "custom tag prop", prop: "as", opts: Options{TagProp: "as"}, want: false},
		{name: "must specify rejects unknown", prop: "boxShadow", opts: Options{MustSpecifyProps: true}, want: false},
		{name: "must specify keeps custom", prop: "title", opts: Options{MustSpecifyProps: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := theme.WithOptions(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, NewBuilder(th).IsStyleProp(tt.prop))
		})
	}
}

func TestBuildCustomValidator(t *testing.T) {
	onlyHref := func(name string) bool { return name == "href" || name == "color" }
	b := NewBuilder(testTheme(t, nil), WithAttributeValidator(onlyHref))

	got := b.Build(Props{
		{Name: "href", Value: "/"},
		{Name: "id", Value: "x"},
		{Name: "color", Value: "red"},
	})
	assert.Equal(t, map[string]any{"id": "x", "color": "red"}, got.Map())
}
