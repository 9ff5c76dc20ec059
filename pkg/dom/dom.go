// Package dom provides the small DOM toolkit the report renderer builds
// its trees with: element construction with class lists, a simple-selector
// query, component templates cloned from an embedded fragment document,
// and markdown-lite text conversion.
//
// Nodes are golang.org/x/net/html nodes throughout, so any subtree can be
// serialized with the standard renderer.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// NewElement creates an element node with the given class names.
func NewElement(tag string, classes ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	if len(classes) > 0 {
		SetAttr(n, "class", strings.Join(classes, " "))
	}
	return n
}

// NewChildOf creates an element with the given classes and appends it to
// parent, returning the new element.
func NewChildOf(parent *html.Node, tag string, classes ...string) *html.Node {
	n := NewElement(tag, classes...)
	parent.AppendChild(n)
	return n
}

// NewText creates a text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// NewFragment creates a container-less grouping node. Serializing a
// fragment emits only its children.
func NewFragment() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr drops the named attribute when present.
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// AddClass appends class names to the element's class attribute.
func AddClass(n *html.Node, classes ...string) {
	existing := Attr(n, "class")
	joined := strings.Join(classes, " ")
	if existing == "" {
		SetAttr(n, "class", joined)
		return
	}
	SetAttr(n, "class", existing+" "+joined)
}

// HasClass reports whether the element carries the class name.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// SetText replaces the element's children with a single text node.
func SetText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(NewText(text))
}

// Text returns the concatenated text content of the subtree.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	walk(n)
	return sb.String()
}

// Find returns the first node in depth-first order matching a simple
// selector: "tag", ".class", "#id", or "tag.class". The root itself is
// a candidate.
func Find(root *html.Node, selector string) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && matches(n, selector) {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

// FindAll returns every node in depth-first order matching the selector.
func FindAll(root *html.Node, selector string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && matches(n, selector) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func matches(n *html.Node, selector string) bool {
	if selector == "" {
		return false
	}
	if strings.HasPrefix(selector, "#") {
		return Attr(n, "id") == selector[1:]
	}
	tag := selector
	var classes []string
	if i := strings.IndexByte(selector, '.'); i >= 0 {
		tag = selector[:i]
		classes = strings.Split(selector[i+1:], ".")
	}
	if tag != "" && n.Data != tag {
		return false
	}
	for _, c := range classes {
		if !HasClass(n, c) {
			return false
		}
	}
	return true
}

// Clone deep-copies a subtree. The copy is detached from any parent.
func Clone(n *html.Node) *html.Node {
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(Clone(c))
	}
	return cp
}

// Render serializes a subtree to HTML. Document and fragment nodes emit
// only their children.
func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if n.Type == html.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", fmt.Errorf("dom: render fragment: %w", err)
			}
		}
		return buf.String(), nil
	}
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("dom: render node: %w", err)
	}
	return buf.String(), nil
}
