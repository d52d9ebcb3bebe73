package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styleprops/internal/report"
	"github.com/yacobolo/styleprops/internal/sheet"
)

// errCheckFailed is returned after a failing check has been reported.
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Resolve element documents and verify the generated CSS",
	Long: `Resolve every element of the matching element documents and parse the
generated CSS back. Exits 1 when any stylesheet fails to parse, or with
--strict when a document or element could not be resolved.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			if err := k.Set("paths", args); err != nil {
				return err
			}
		}
		return runCheck(cmd.OutOrStdout())
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Also fail on documents or elements that could not be resolved")
}

func runCheck(w io.Writer) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	results, warnings, err := p.resolveDocuments()
	if err != nil {
		return err
	}

	checks := make([]report.CheckResult, 0, len(results))
	failures := 0
	for _, res := range results {
		s, err := sheet.Parse(res.Element.CSS())
		if err != nil {
			failures++
		}
		checks = append(checks, report.CheckResult{Resolved: res, Sheet: s, Err: err})
	}

	if !p.config.Quiet {
		rep := report.NewReporter(w, report.Config{UseColors: p.config.UseColors})
		rep.PrintCheck(checks)
		rep.PrintWarnings(warnings)
	}

	strict := getBoolWithFallback("strict", "check.strict", false)
	switch {
	case failures > 0:
		return fmt.Errorf("%w: %d invalid stylesheets", errCheckFailed, failures)
	case strict && len(warnings) > 0:
		return fmt.Errorf("%w: %d unresolved", errCheckFailed, len(warnings))
	}
	return nil
}
