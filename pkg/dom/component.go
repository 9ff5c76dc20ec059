package dom

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// componentsHTML holds the visual component templates. Each top-level
// element carries an id naming the component; clones drop the id.
//
//go:embed templates/components.html
var componentsHTML string

// Document is a parsed fragment document used as the template context
// for rendering. A Document is immutable after parsing; every Component
// call returns a fresh clone.
type Document struct {
	root *html.Node
}

// ParseDocument parses an HTML source into a template context.
func ParseDocument(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("dom: parse template document: %w", err)
	}
	return &Document{root: root}, nil
}

var (
	componentsOnce sync.Once
	componentsDoc  *Document
)

// Components returns the built-in template context parsed from the
// embedded component file.
func Components() *Document {
	componentsOnce.Do(func() {
		doc, err := ParseDocument(componentsHTML)
		if err != nil {
			// The embedded file is a compile-time asset; failing to
			// parse it means the binary itself is broken.
			panic(err)
		}
		componentsDoc = doc
	})
	return componentsDoc
}

// Component clones the named template fragment. An unknown name is a
// programmer error and panics.
func (d *Document) Component(name string) *html.Node {
	tmpl := Find(d.root, "#"+name)
	if tmpl == nil {
		panic(fmt.Sprintf("dom: unknown component template %q", name))
	}
	clone := Clone(tmpl)
	RemoveAttr(clone, "id")
	return clone
}

// Has reports whether the document defines the named component.
func (d *Document) Has(name string) bool {
	return Find(d.root, "#"+name) != nil
}
