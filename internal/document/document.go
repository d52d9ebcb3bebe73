// Package document reads element documents: YAML files listing elements to
// resolve, each with a tag and an ordered set of props.
//
//	elements:
//	  - name: hero
//	    tag: section
//	    props:
//	      p: [2, 4]
//	      hoverBg: primary
//	  - name: card
//	    component: Card
//	    props:
//	      m: 1
//
// Props keep the order they are written in, since later props win when two
// write the same CSS property. Components with the same name are one
// reference tag across every document parsed with the same Components.
package document

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/styleprops"
)

// ErrInvalidDocument is returned for documents that do not have the expected shape.
var ErrInvalidDocument = errors.New("invalid element document")

// Document is a parsed element document.
type Document struct {
	Path     string
	Elements []Element
}

// Element is one entry of a document.
type Element struct {
	Name  string
	Tag   styleprops.Tag
	Props styleprops.Props
	Line  int
}

// Component is a reference tag named in a document.
type Component struct {
	name string
}

// ComponentName implements styleprops.Component.
func (c *Component) ComponentName() string {
	return c.name
}

// Components interns components by name, so that every document parsed with
// the same set refers to one *Component per name. It is safe for concurrent use.
type Components struct {
	mu     sync.Mutex
	byName map[string]*Component
}

// NewComponents returns an empty set.
func NewComponents() *Components {
	return &Components{byName: make(map[string]*Component)}
}

// Get returns the component called name, creating it on first use.
func (cs *Components) Get(name string) *Component {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	c, ok := cs.byName[name]
	if !ok {
		c = &Component{name: name}
		cs.byName[name] = c
	}
	return c
}

// Load reads and parses the document at path. A nil set gives the document
// components of its own.
func Load(path string, components *Components) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data, components)
}

// Parse parses document data. path is only used in error messages and the result.
// Every malformed element is reported, not just the first.
func Parse(path string, data []byte, components *Components) (*Document, error) {
	if components == nil {
		components = NewComponents()
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
	}

	doc := &Document{Path: path}
	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s:%d: expected a mapping", ErrInvalidDocument, path, top.Line)
	}

	list := lookup(top, "elements")
	if list == nil {
		return doc, nil
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s:%d: elements must be a list", ErrInvalidDocument, path, list.Line)
	}

	var errs error
	for i, node := range list.Content {
		el, err := parseElement(node, i, components)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s:%d: %w", path, node.Line, err))
			continue
		}
		doc.Elements = append(doc.Elements, el)
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, errs)
	}

	return doc, nil
}

func parseElement(node *yaml.Node, index int, components *Components) (Element, error) {
	el := Element{Name: fmt.Sprintf("elements[%d]", index), Line: node.Line}
	if node.Kind != yaml.MappingNode {
		return el, errors.New("element must be a mapping")
	}

	var tag, component string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			el.Name = value.Value
		case "tag":
			tag = value.Value
		case "component":
			component = value.Value
		case "props":
			props, err := parseProps(value)
			if err != nil {
				return el, err
			}
			el.Props = props
		default:
			return el, fmt.Errorf("unknown field %q", key.Value)
		}
	}

	switch {
	case tag != "" && component != "":
		return el, errors.New("tag and component are mutually exclusive")
	case component != "":
		el.Tag = styleprops.ComponentTag(components.Get(component))
	case tag != "":
		el.Tag = styleprops.ElementTag(tag)
	default:
		el.Tag = styleprops.ElementTag("div")
	}

	return el, nil
}

// parseProps decodes a mapping into props, keeping key order.
func parseProps(node *yaml.Node) (styleprops.Props, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("props must be a mapping")
	}

	props := make(styleprops.Props, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v any
		if err := node.Content[i+1].Decode(&v); err != nil {
			return nil, fmt.Errorf("prop %q: %w", node.Content[i].Value, err)
		}
		props = append(props, styleprops.Prop{Name: node.Content[i].Value, Value: v})
	}
	return props, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
