package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "styleprops",
	Short: "Resolve style props into CSS and inspect themes",
	Long: `Resolve elements written as tag + style props against a theme.
Props like p={[1, 2]} or hoverColor="primary" become generated classes
with their CSS, including responsive media queries and pseudo selectors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().String("theme", "", "Theme file (YAML)")
	rootCmd.PersistentFlags().String("preset", "default", "Built-in theme when no theme file is given: none|default|tachyons")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
