// Package sheet reads generated CSS back into rules, so emitted styles can be
// checked by a real CSS parser instead of by string comparison.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// Declaration is one property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a ruleset together with the media query it is nested in.
type Rule struct {
	Selector     string
	Media        string // "" outside @media
	Declarations []Declaration
}

// Sheet is a parsed stylesheet.
type Sheet struct {
	Rules []Rule
}

// parserState tracks the at-rule nesting while walking the grammar.
type parserState struct {
	media   []string
	current *Rule
	rules   []Rule
	errs    error
}

// Parse parses CSS text. Parse errors are collected and returned together
// with every rule that could still be read.
func Parse(content string) (*Sheet, error) {
	state := &parserState{}
	p := css.NewParser(parse.NewInputString(content), false)

	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			err := p.Err()
			if errors.Is(err, io.EOF) {
				break
			}
			state.errs = multierr.Append(state.errs, err)
			if !p.HasParseError() {
				break
			}
			continue
		}
		state.handle(gt, data, p.Values())
	}

	return &Sheet{Rules: state.rules}, state.errs
}

func (s *parserState) handle(gt css.GrammarType, data []byte, values []css.Token) {
	switch gt {
	case css.BeginAtRuleGrammar:
		name := string(data)
		if name == "@media" {
			s.media = append(s.media, tokensString(values))
		} else {
			s.media = append(s.media, name+" "+tokensString(values))
		}
	case css.EndAtRuleGrammar:
		if len(s.media) > 0 {
			s.media = s.media[:len(s.media)-1]
		}
	case css.BeginRulesetGrammar:
		s.current = &Rule{
			Selector: tokensString(values),
			Media:    strings.Join(s.media, " and "),
		}
	case css.EndRulesetGrammar:
		if s.current != nil {
			s.rules = append(s.rules, *s.current)
			s.current = nil
		}
	case css.DeclarationGrammar, css.CustomPropertyGrammar:
		if s.current == nil {
			s.errs = multierr.Append(s.errs, fmt.Errorf("declaration %q outside a rule", data))
			return
		}
		s.current.Declarations = append(s.current.Declarations, Declaration{
			Property: string(data),
			Value:    tokensString(values),
		})
	}
}

func tokensString(values []css.Token) string {
	var b strings.Builder
	for _, v := range values {
		b.Write(v.Data)
	}
	return strings.TrimSpace(b.String())
}

// Len returns the number of rules.
func (s *Sheet) Len() int {
	return len(s.Rules)
}

// Declarations counts declarations across all rules.
func (s *Sheet) Declarations() int {
	n := 0
	for _, r := range s.Rules {
		n += len(r.Declarations)
	}
	return n
}

// MediaQueries returns the distinct media queries in order of appearance.
func (s *Sheet) MediaQueries() []string {
	var out []string
	for _, r := range s.Rules {
		if r.Media != "" && !slices.Contains(out, r.Media) {
			out = append(out, r.Media)
		}
	}
	return out
}

// Selectors returns the distinct selectors in order of appearance.
func (s *Sheet) Selectors() []string {
	var out []string
	for _, r := range s.Rules {
		if !slices.Contains(out, r.Selector) {
			out = append(out, r.Selector)
		}
	}
	return out
}

// Get returns the value of property in the last matching rule for selector
// and media.
func (s *Sheet) Get(selector, media, property string) (string, bool) {
	for i := len(s.Rules) - 1; i >= 0; i-- {
		r := s.Rules[i]
		if r.Selector != selector || r.Media != media {
			continue
		}
		for j := len(r.Declarations) - 1; j >= 0; j-- {
			if r.Declarations[j].Property == property {
				return r.Declarations[j].Value, true
			}
		}
	}
	return "", false
}

// String formats the rule's declarations on one line for terminal output.
func (r Rule) String() string {
	if len(r.Declarations) == 0 {
		return r.Selector + " {}"
	}

	parts := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		parts = append(parts, d.Property+": "+d.Value)
	}
	result := r.Selector + " { " + strings.Join(parts, "; ") + "; }"

	if len(result) > 120 {
		result = result[:117] + "..."
	}
	return result
}
