// Package report writes resolved elements, check results and prop tables to
// the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/styleprops"
	"github.com/yacobolo/styleprops/internal/sheet"
)

// Resolved is one element from an element document together with its result.
type Resolved struct {
	Source  string // document path
	Name    string // element name within the document
	Element *styleprops.Element
}

// Location formats the element position as "file:name".
func (r Resolved) Location() string {
	return r.Source + ":" + r.Name
}

// CheckResult is a resolved element whose CSS was parsed back.
type CheckResult struct {
	Resolved
	Sheet *sheet.Sheet
	Err   error
}

// Config controls terminal output.
type Config struct {
	UseColors bool
}

// Reporter formats results for a terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// FORCE_COLOR is honored by most CI systems
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintCSS writes the generated rules of every element, each preceded by a
// comment naming its location.
func (r *Reporter) PrintCSS(results []Resolved) {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "/* "+res.Location()+" ("+res.Element.Component+") */", r.useColors))
		if css := res.Element.CSS(); css != "" {
			fmt.Fprint(r.w, css)
		}
	}
}

// PrintSummary writes one line per element: location, component, class and
// forwarded attributes.
func (r *Reporter) PrintSummary(results []Resolved) {
	for _, res := range results {
		el := res.Element
		class := el.ClassName
		if class == "" {
			class = "(no class)"
		}
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleCyan, res.Location()+":", r.useColors),
			el.Component,
			class)

		if len(el.Attrs) > 0 {
			attrs := make([]string, 0, len(el.Attrs))
			for _, a := range el.Attrs {
				attrs = append(attrs, fmt.Sprintf("%s=%v", a.Name, a.Value))
			}
			fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleGray, strings.Join(attrs, " "), r.useColors))
		}
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s resolved\n", pluralizeCount(len(results), "element", "elements"))
}

// PrintCheck writes one line per element in file:name: message form and
// returns the number of failures.
func (r *Reporter) PrintCheck(results []CheckResult) int {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Source < results[j].Source
	})

	failures := 0
	rules, media := 0, 0
	for _, res := range results {
		location := RenderStyle(StyleCyan, res.Location()+":", r.useColors)
		if res.Err != nil {
			failures++
			fmt.Fprintf(r.w, "%s %s %s\n", location,
				RenderStyle(StyleRed, "invalid CSS:", r.useColors), res.Err)
			continue
		}

		rules += res.Sheet.Len()
		media += len(res.Sheet.MediaQueries())
		fmt.Fprintf(r.w, "%s %s, %s, %s %s\n", location,
			pluralizeCount(res.Sheet.Len(), "rule", "rules"),
			pluralizeCount(res.Sheet.Declarations(), "declaration", "declarations"),
			pluralizeCount(len(res.Sheet.MediaQueries()), "media query", "media queries"),
			RenderStyle(StyleGreen, "ok", r.useColors))
	}

	fmt.Fprintln(r.w)
	summary := fmt.Sprintf("%s checked, %s, %s",
		pluralizeCount(len(results), "element", "elements"),
		pluralizeCount(rules, "rule", "rules"),
		pluralizeCount(media, "media query", "media queries"))
	if failures > 0 {
		fmt.Fprintf(r.w, "%s; %s\n", summary, RenderStyle(StyleRed, pluralizeCount(failures, "failure", "failures"), r.useColors))
	} else {
		fmt.Fprintln(r.w, summary)
	}
	return failures
}

// PrintProps writes the expanded prop definitions of theme as a table,
// grouped by category.
func (r *Reporter) PrintProps(theme *styleprops.Theme) {
	names := theme.PropNames()

	width := len("prop")
	for _, n := range names {
		width = max(width, len(n))
	}

	header := fmt.Sprintf("%-*s  %-12s  %-6s  %s", width, "prop", "themeKey", "unit", "style")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, header, r.useColors))

	groups := categorizeProps(theme)
	for _, cat := range categoryOrder {
		if len(groups[cat]) == 0 {
			continue
		}

		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, string(cat), r.useColors))
		fmt.Fprintln(r.w, strings.Repeat("-", len(cat)))
		for _, n := range groups[cat] {
			def, _ := theme.Prop(n)
			fmt.Fprintf(r.w, "%-*s  %-12s  %-6s  %s\n", width, n,
				orDash(def.ThemeKey), orDash(def.DefaultUnit), def.Style)
		}
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s, %s\n",
		pluralizeCount(len(names), "prop", "props"),
		pluralizeCount(len(theme.MediaQueries()), "breakpoint", "breakpoints"))
}

// PrintWarnings writes non-fatal problems, such as documents that failed to load.
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, w := range warnings {
		fmt.Fprintf(r.w, "• %s\n", w)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
