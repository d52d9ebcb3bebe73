package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styleprops"
	"github.com/yacobolo/styleprops/internal/report"
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "List the prop definitions of the active theme",
	Long: `Print every prop of the active theme after variation expansion, with
its scale, default unit and CSS target. --computed lists the computed
style names a theme file can refer to instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		computed, _ := cmd.Flags().GetBool("computed")
		return runProps(cmd.OutOrStdout(), computed)
	},
}

func init() {
	propsCmd.Flags().Bool("computed", false, "List computed style names instead")
}

func runProps(w io.Writer, computed bool) error {
	if computed {
		for _, name := range styleprops.ComputedNames() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	config := buildRunConfig()
	theme, err := config.loadTheme()
	if err != nil {
		return err
	}

	report.NewReporter(w, report.Config{UseColors: config.UseColors}).PrintProps(theme)
	return nil
}
