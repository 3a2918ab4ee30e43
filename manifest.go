package texgen

import (
	"fmt"
)

// Manifest is a declarative description of a document, usually decoded from a
// YAML or TOML file (see DecodeFile). Build turns it into a document tree
// through the scoped builder API.
type Manifest struct {
	Class    string    `yaml:"class,omitempty" toml:"class,omitempty"`
	Options  []string  `yaml:"options,omitempty" toml:"options,omitempty"`
	Packages []Package `yaml:"packages,omitempty" toml:"packages,omitempty"`
	Body     []Entry   `yaml:"body,omitempty" toml:"body,omitempty"`
}

// Package names a package loaded in the document preamble.
type Package struct {
	Name    string   `yaml:"name" toml:"name"`
	Options []string `yaml:"options,omitempty" toml:"options,omitempty"`
}

// Entry describes one node of the document body. Kind selects the variant:
// text, command, container, frame, itemize, enumerate, math, center,
// flushleft or flushright. Items are written as entries of kind item inside
// itemize and enumerate bodies and are not allowed anywhere else.
//
// Attributes are key=value strings, rendered in declaration order.
type Entry struct {
	Kind       string   `yaml:"kind" toml:"kind"`
	Name       string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Text       string   `yaml:"text,omitempty" toml:"text,omitempty"`
	Parameter  string   `yaml:"parameter,omitempty" toml:"parameter,omitempty"`
	Title      string   `yaml:"title,omitempty" toml:"title,omitempty"`
	Flags      []string `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Attributes []string `yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	Children   []Entry  `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Build constructs the document described by the manifest. The class and
// packages become \documentclass and \usepackage commands at the top of the
// document container, followed by the body entries.
func (m *Manifest) Build() (*Document, error) {
	var err error

	doc := NewDocument(func(e *Element) {
		if m.Class != "" {
			e.DocumentClass(m.Class, m.Options...)
		}

		for _, pkg := range m.Packages {
			e.UsePackage(pkg.Name, pkg.Options...)
		}

		err = buildEntries(e, m.Body)
	})

	if err != nil {
		return nil, err
	}

	return doc, nil
}

func buildEntries(e *Element, entries []Entry) error {
	for _, entry := range entries {
		if err := buildEntry(e, entry); err != nil {
			return err
		}
	}

	return nil
}

func buildEntry(e *Element, entry Entry) error {
	switch entry.Kind {
	case "text":
		e.Text(entry.Text)
		return nil
	case "command":
		if entry.Name == "" {
			return fmt.Errorf("command entry requires a name")
		}

		e.Command(entry.Name, entry.Parameter, entry.Flags...)
		return nil
	case "container":
		if entry.Name == "" {
			return fmt.Errorf("container entry requires a name")
		}

		var err error
		e.Environment(entry.Name, func(e *Element) {
			err = buildEntries(e, entry.Children)
		}, ParseAttributes(entry.Attributes)...)
		return err
	case "frame":
		var err error
		e.Frame(entry.Title, func(e *Element) {
			err = buildEntries(e, entry.Children)
		}, ParseAttributes(entry.Attributes)...)
		return err
	case "itemize", "enumerate":
		return buildList(e, entry)
	case "math", "center", "flushleft", "flushright":
		var err error
		e.Environment(entry.Kind, func(e *Element) {
			err = buildEntries(e, entry.Children)
		})
		return err
	case "item":
		return fmt.Errorf("item entries are only allowed inside itemize and enumerate")
	default:
		return fmt.Errorf("unknown entry kind %#v", entry.Kind)
	}
}

func buildList(e *Element, entry Entry) error {
	build := e.Itemize
	if entry.Kind == "enumerate" {
		build = e.Enumerate
	}

	var err error
	build(func(l *List) {
		for _, item := range entry.Children {
			if item.Kind != "item" {
				err = fmt.Errorf("%v entries can only contain items, got %#v", entry.Kind, item.Kind)
				return
			}

			children := item.Children
			l.Item(func(e *Element) {
				err = buildEntries(e, children)
			})

			if err != nil {
				return
			}
		}
	}, ParseAttributes(entry.Attributes)...)

	return err
}
