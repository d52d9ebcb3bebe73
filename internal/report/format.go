package report

import "fmt"

// Format selects how resolved elements are written.
type Format string

// Output formats.
const (
	FormatCSS     Format = "css"     // generated rules, one block per element
	FormatJSON    Format = "json"    // machine-readable elements and style objects
	FormatSummary Format = "summary" // one line per element plus attributes
)

// ParseFormat validates a --format value. The empty string selects FormatCSS.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "css":
		return FormatCSS, nil
	case "json":
		return FormatJSON, nil
	case "summary":
		return FormatSummary, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want css, json or summary)", s)
	}
}
