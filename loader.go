package styleprops

import (
	"fmt"
	"maps"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Reserved top-level keys of a theme document. Every other key is a scale.
const (
	themeKeyExtends = "extends"
	themeKeyOptions = "options"
	themeKeyProps   = "props"
)

// Presets a theme document can extend.
const (
	PresetNone     = "none"
	PresetDefault  = "default"
	PresetTachyons = "tachyons"
)

// LoadTheme reads a YAML theme document:
//
//	extends: default          # none, default or tachyons
//	options:
//	  tagProp: as
//	colors:
//	  primary: "#07c"
//	  gray: ["#eee", "#999", "#333"]
//	props:
//	  fg: color               # shorthand for style: color
//	  gap:
//	    themeKey: space
//	    defaultUnit: px
//	    style: [rowGap, columnGap]
//	  w:
//	    computed: fraction-width
func LoadTheme(path string) (*Theme, error) {
	// Scale names and breakpoint keys may contain dots.
	k := koanf.NewWithConf(koanf.Conf{Delim: "/"})
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrThemeFile, path, err)
	}
	t, err := themeFromMap(k.Raw())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTheme is LoadTheme for a document already in memory.
func ParseTheme(data []byte) (*Theme, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThemeFile, err)
	}
	return themeFromMap(raw)
}

// PresetTheme returns the theme a preset name stands for.
func PresetTheme(name string) (*Theme, error) {
	scales, props, err := presetParts(name)
	if err != nil {
		return nil, err
	}
	return NewTheme(scales, props, Options{})
}

func presetParts(name string) (map[string]*Scale, map[string]PropDefinition, error) {
	switch name {
	case "", PresetNone:
		return map[string]*Scale{}, map[string]PropDefinition{}, nil
	case PresetDefault:
		return DefaultScales(), DefaultProps(), nil
	case PresetTachyons:
		props := DefaultProps()
		maps.Copy(props, TachyonsProps())
		return DefaultScales(), props, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown preset %q", ErrThemeFile, name)
	}
}

func themeFromMap(raw map[string]any) (*Theme, error) {
	var errs error

	extends, _ := raw[themeKeyExtends].(string)
	scales, props, err := presetParts(extends)
	if err != nil {
		return nil, err
	}

	opts, err := parseOptions(raw[themeKeyOptions])
	errs = multierr.Append(errs, err)

	names := lo.Keys(raw)
	slices.Sort(names)
	for _, name := range names {
		switch name {
		case themeKeyExtends, themeKeyOptions, themeKeyProps:
			continue
		}
		s, err := ScaleFrom(raw[name])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("scale %q: %w", name, err))
			continue
		}
		scales[name] = s
	}

	if rawProps, ok := raw[themeKeyProps]; ok {
		m, ok := rawProps.(map[string]any)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("props: expected a mapping, got %T", rawProps))
		}
		propNames := lo.Keys(m)
		slices.Sort(propNames)
		for _, name := range propNames {
			def, err := parsePropDefinition(m[name])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("prop %q: %w", name, err))
				continue
			}
			props[name] = def
		}
	}

	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrThemeFile, errs)
	}

	t, err := NewTheme(scales, props, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThemeFile, err)
	}
	return t, nil
}

func parseOptions(v any) (Options, error) {
	var opts Options
	if v == nil {
		return opts, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return opts, fmt.Errorf("options: expected a mapping, got %T", v)
	}

	keys := lo.Keys(m)
	slices.Sort(keys)

	var errs error
	for _, key := range keys {
		val := m[key]
		switch key {
		case "themeBreakpointsKey":
			s, ok := val.(string)
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("options.%s: expected a string, got %T", key, val))
			}
			opts.ThemeBreakpointsKey = s
		case "tagProp":
			s, ok := val.(string)
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("options.%s: expected a string, got %T", key, val))
			}
			opts.TagProp = s
		case "mustSpecifyProps":
			b, ok := val.(bool)
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("options.%s: expected a boolean, got %T", key, val))
			}
			opts.MustSpecifyProps = b
		default:
			errs = multierr.Append(errs, fmt.Errorf("options.%s: unknown option", key))
		}
	}
	return opts, errs
}

func parsePropDefinition(v any) (PropDefinition, error) {
	var def PropDefinition

	if s, ok := v.(string); ok {
		def.Style = Property(s)
		return def, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return def, fmt.Errorf("expected a CSS property or a mapping, got %T", v)
	}

	keys := lo.Keys(m)
	slices.Sort(keys)

	var errs error
	for _, key := range keys {
		val := m[key]
		var err error
		switch key {
		case "themeKey":
			def.ThemeKey, err = asString(key, val)
		case "defaultUnit":
			def.DefaultUnit, err = asString(key, val)
		case "defaultValue":
			def.DefaultValue = val
		case "style":
			if _, dup := m["computed"]; dup {
				err = fmt.Errorf("style and computed are mutually exclusive")
				break
			}
			def.Style, err = parseTarget(val)
		case "computed":
			var name string
			if name, err = asString(key, val); err == nil {
				def.Style, err = ComputedStyle(name)
			}
		case "variations":
			def.Variations, err = parseVariations(val)
		default:
			err = fmt.Errorf("unknown field %q", key)
		}
		errs = multierr.Append(errs, err)
	}
	return def, errs
}

func parseTarget(v any) (StyleTarget, error) {
	switch t := v.(type) {
	case string:
		return Property(t), nil
	case []any:
		names := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return StyleTarget{}, fmt.Errorf("style[%d]: expected a string, got %T", i, item)
			}
			names = append(names, s)
		}
		return Properties(names...), nil
	case map[string]any:
		name, ok := t["computed"].(string)
		if !ok || len(t) != 1 {
			return StyleTarget{}, fmt.Errorf("style: expected {computed: <name>}")
		}
		return ComputedStyle(name)
	default:
		return StyleTarget{}, fmt.Errorf("style: expected a string or a list, got %T", v)
	}
}

func parseVariations(v any) (map[string]StyleTarget, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("variations: expected a mapping, got %T", v)
	}
	out := make(map[string]StyleTarget, len(m))
	names := lo.Keys(m)
	slices.Sort(names)

	var errs error
	for _, name := range names {
		t, err := parseTarget(m[name])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("variations.%s: %w", name, err))
			continue
		}
		out[name] = t
	}
	return out, errs
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", key, v)
	}
	return s, nil
}
