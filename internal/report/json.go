package report

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/styleprops"
)

// JSONOutput is the structured export schema of `styleprops resolve --format json`.
type JSONOutput struct {
	Version  string        `json:"version"`
	Elements []JSONElement `json:"elements"`
}

// JSONElement is one resolved element.
type JSONElement struct {
	Source    string            `json:"source"`
	Name      string            `json:"name"`
	Tag       string            `json:"tag"`
	Component string            `json:"component"`
	ClassName string            `json:"class_name,omitempty"`
	Attrs     []JSONAttr        `json:"attrs,omitempty"`
	Style     *styleprops.Style `json:"style"`
	CSS       string            `json:"css,omitempty"`
}

// JSONAttr is one forwarded attribute, kept in input order.
type JSONAttr struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// WriteJSON writes resolved elements as indented JSON.
func WriteJSON(w io.Writer, version string, results []Resolved) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(version, results))
}

func buildJSONOutput(version string, results []Resolved) JSONOutput {
	out := JSONOutput{
		Version:  version,
		Elements: make([]JSONElement, 0, len(results)),
	}
	for _, res := range results {
		el := res.Element
		je := JSONElement{
			Source:    res.Source,
			Name:      res.Name,
			Tag:       el.Tag.Name(),
			Component: el.Component,
			ClassName: el.ClassName,
			Style:     el.Style,
			CSS:       el.CSS(),
		}
		for _, a := range el.Attrs {
			je.Attrs = append(je.Attrs, JSONAttr{Name: a.Name, Value: a.Value})
		}
		out.Elements = append(out.Elements, je)
	}
	return out
}
