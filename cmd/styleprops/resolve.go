package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/styleprops"
	"github.com/yacobolo/styleprops/internal/document"
	"github.com/yacobolo/styleprops/internal/report"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [patterns...]",
	Short: "Resolve element documents and print the generated CSS",
	Long: `Resolve every element of the matching element documents against the
theme and print the result. Patterns support ** and default to styles/**/*.yaml.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			if err := k.Set("paths", args); err != nil {
				return err
			}
		}
		return runResolve(cmd.OutOrStdout())
	},
}

func init() {
	resolveCmd.Flags().String("format", "", "Output format: css|json|summary (default css)")
}

// pipeline is the state shared by the resolving commands.
type pipeline struct {
	config     runConfig
	session    *styleprops.Session
	components *document.Components
	log        *zap.Logger
}

func newPipeline() (*pipeline, error) {
	config := buildRunConfig()
	log := newLogger(config.Verbose, config.Quiet)

	theme, err := config.loadTheme()
	if err != nil {
		return nil, err
	}
	log.Debug("theme loaded",
		zap.String("file", config.ThemeFile),
		zap.String("preset", config.Preset),
		zap.Int("props", len(theme.PropNames())))

	return &pipeline{
		config:     config,
		session:    styleprops.NewSession(theme, styleprops.WithLogger(log)),
		components: document.NewComponents(),
		log:        log,
	}, nil
}

// resolveDocuments resolves every element of every discovered document.
// Documents that fail to load and elements that fail to resolve are returned
// as warnings; the rest is still resolved.
func (p *pipeline) resolveDocuments() ([]report.Resolved, []string, error) {
	files, stats, err := document.Discover(p.config.Paths)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding patterns: %w", err)
	}
	p.log.Debug("discovered documents",
		zap.Strings("patterns", p.config.Paths),
		zap.Int("discovered", stats.Discovered),
		zap.Int("selected", stats.Selected),
		zap.Int("skipped", stats.Skipped))

	var (
		results []report.Resolved
		errs    error
	)
	for _, path := range files {
		doc, err := document.Load(path, p.components)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		for _, el := range doc.Elements {
			resolved, err := p.session.Resolve(el.Tag, el.Props)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s:%s: %w", path, el.Name, err))
				continue
			}
			results = append(results, report.Resolved{Source: path, Name: el.Name, Element: resolved})
		}
	}

	warnings := lo.Map(multierr.Errors(errs), func(err error, _ int) string {
		return err.Error()
	})
	for _, w := range warnings {
		p.log.Warn(w)
	}
	if len(files) == 0 {
		p.log.Warn("no element documents matched", zap.Strings("patterns", p.config.Paths))
	}

	return results, warnings, nil
}

func runResolve(w io.Writer) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(p.config.Format)
	if err != nil {
		return err
	}

	results, _, err := p.resolveDocuments()
	if err != nil {
		return err
	}

	if p.config.Quiet {
		return nil
	}

	rep := report.NewReporter(w, report.Config{UseColors: p.config.UseColors})
	switch format {
	case report.FormatJSON:
		return report.WriteJSON(w, version, results)
	case report.FormatSummary:
		rep.PrintSummary(results)
	default:
		rep.PrintCSS(results)
	}
	return nil
}
