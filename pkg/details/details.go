// Package details renders the structured "details" payload an audit may
// carry (tables, lists, code blocks) into DOM nodes. Payload types the
// renderer does not recognize degrade to nothing rather than erroring:
// report JSON evolves faster than viewers.
package details

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/love0324/lighthouse/pkg/dom"
)

// Payload is the wire form of an audit's details.
type Payload struct {
	Type     string           `json:"type"`
	Headings []Heading        `json:"headings,omitempty"`
	Items    []map[string]any `json:"items,omitempty"`
	Code     string           `json:"code,omitempty"`
}

// Heading describes one table column.
type Heading struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	ValueType string `json:"valueType,omitempty"`
}

// Payload type tags.
const (
	TypeTable     = "table"
	TypeList      = "list"
	TypeCode      = "code"
	TypeDebugData = "debugdata"
)

// Renderer turns payloads into DOM nodes. It shares the component
// template context with the category renderer.
type Renderer struct {
	doc *dom.Document
}

// NewRenderer creates a details renderer over the given template context.
func NewRenderer(doc *dom.Document) *Renderer {
	return &Renderer{doc: doc}
}

// SetTemplateContext replaces the template context for subsequent calls.
func (r *Renderer) SetTemplateContext(doc *dom.Document) {
	r.doc = doc
}

// Render returns a node for the payload, or nil when the payload type
// carries nothing displayable (debugdata, unknown types, empty tables).
func (r *Renderer) Render(p *Payload) *html.Node {
	if p == nil {
		return nil
	}
	switch p.Type {
	case TypeTable:
		return r.renderTable(p)
	case TypeList:
		return r.renderList(p)
	case TypeCode:
		return r.renderCode(p)
	default:
		return nil
	}
}

func (r *Renderer) renderTable(p *Payload) *html.Node {
	if len(p.Headings) == 0 || len(p.Items) == 0 {
		return nil
	}
	table := dom.NewElement("table", "lh-table")
	thead := dom.NewChildOf(table, "thead")
	headRow := dom.NewChildOf(thead, "tr")
	for _, h := range p.Headings {
		th := dom.NewChildOf(headRow, "th", "lh-table-column--"+valueType(h))
		th.AppendChild(dom.ConvertCodeSnippets(h.Label))
	}
	tbody := dom.NewChildOf(table, "tbody")
	for _, item := range p.Items {
		row := dom.NewChildOf(tbody, "tr")
		for _, h := range p.Headings {
			td := dom.NewChildOf(row, "td", "lh-table-column--"+valueType(h))
			if v, ok := item[h.Key]; ok {
				td.AppendChild(renderValue(v, valueType(h)))
			}
		}
	}
	return table
}

func (r *Renderer) renderList(p *Payload) *html.Node {
	if len(p.Items) == 0 {
		return nil
	}
	list := dom.NewElement("div", "lh-list")
	for _, item := range p.Items {
		entry := dom.NewChildOf(list, "div", "lh-list__item")
		if v, ok := item["value"]; ok {
			entry.AppendChild(renderValue(v, "text"))
		}
	}
	return list
}

func (r *Renderer) renderCode(p *Payload) *html.Node {
	if p.Code == "" {
		return nil
	}
	pre := dom.NewElement("pre", "lh-code")
	pre.AppendChild(dom.NewText(p.Code))
	return pre
}

func valueType(h Heading) string {
	if h.ValueType == "" {
		return "text"
	}
	return h.ValueType
}

// renderValue formats one cell value according to the column value type.
func renderValue(v any, valueType string) *html.Node {
	switch valueType {
	case "url":
		s := toString(v)
		a := dom.NewElement("a", "lh-link")
		dom.SetAttr(a, "href", s)
		dom.SetAttr(a, "rel", "noopener")
		dom.SetAttr(a, "target", "_blank")
		a.AppendChild(dom.NewText(s))
		return a
	case "code":
		code := dom.NewElement("code")
		code.AppendChild(dom.NewText(toString(v)))
		return code
	case "numeric", "ms", "bytes":
		text := toString(v)
		if valueType == "ms" {
			text += " ms"
		}
		span := dom.NewElement("span", "lh-text--numeric")
		span.AppendChild(dom.NewText(text))
		return span
	default:
		return dom.NewText(toString(v))
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
