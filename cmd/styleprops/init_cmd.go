package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .styleprops.yaml config file",
	Long:  `Create a .styleprops.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# styleprops configuration

# Shared settings
verbose: false
color: false

# Theme: a YAML theme file, or a built-in preset (none | default | tachyons)
# theme: styles/theme.yaml
preset: default

# Element documents to resolve
documents:
  - "styles/**/*.yaml"

resolve:
  format: css # css | json | summary

check:
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
