package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/styleprops"
)

const defaultConfigFile = ".styleprops.yaml"

var defaultPaths = []string{"styles/**/*.yaml"}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set override file and env values.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("STYLEPROPS_", ".", func(s string) string {
		// STYLEPROPS_THEME -> theme
		// STYLEPROPS_RESOLVE_FORMAT -> resolve.format
		// STYLEPROPS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEPROPS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// runConfig is the settings shared by the resolving commands.
type runConfig struct {
	ThemeFile string
	Preset    string
	Paths     []string
	Format    string
	Verbose   bool
	Quiet     bool
	UseColors bool
}

// buildRunConfig constructs the command settings from koanf state.
func buildRunConfig() runConfig {
	config := runConfig{
		ThemeFile: getStringWithFallback("theme", "theme", ""),
		Preset:    getStringWithFallback("preset", "preset", styleprops.PresetDefault),
		Format:    getStringWithFallback("format", "resolve.format", "css"),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
		Quiet:     getBoolWithFallback("quiet", "quiet", false),
		UseColors: getBoolWithFallback("color", "color", false),
	}

	// Positional patterns are stored under "paths" by the commands.
	if paths := k.Strings("paths"); len(paths) > 0 {
		config.Paths = paths
	} else if paths := k.Strings("documents"); len(paths) > 0 {
		config.Paths = paths
	} else {
		config.Paths = defaultPaths
	}

	return config
}

// loadTheme returns the theme file when one is configured, the preset otherwise.
func (c runConfig) loadTheme() (*styleprops.Theme, error) {
	if c.ThemeFile != "" {
		return styleprops.LoadTheme(c.ThemeFile)
	}
	return styleprops.PresetTheme(c.Preset)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
