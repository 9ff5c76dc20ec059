// Package writers provides document-level output: wrapping rendered
// category sections into a standalone HTML page, and a PDF summary.
package writers

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/spaolacci/murmur3"
	"golang.org/x/net/html"

	"github.com/love0324/lighthouse/pkg/config"
	"github.com/love0324/lighthouse/pkg/dom"
)

//go:embed assets/report.css
var reportCSS string

// pageTemplate is the document shell. Sections arrive pre-rendered and
// pre-escaped by the DOM layer, so they pass through as template.HTML.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{ .Theme | default "auto" }}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title | default "Audit report" }}</title>
<style>{{ .CSS }}</style>
</head>
<body>
<main class="lh-main">
{{- range .Sections }}
{{ . }}
{{- end }}
</main>
<footer class="lh-footer">
  <span>Generated {{ .GeneratedAt }}</span>
  {{- if .Fingerprint }}
  <span class="lh-footer__fingerprint" title="source report fingerprint">{{ .Fingerprint }}</span>
  {{- end }}
</footer>
</body>
</html>
`

// DocumentWriter accumulates rendered category sections and writes a
// complete HTML page on Close.
type DocumentWriter struct {
	w           io.Writer
	cfg         *config.Config
	tmpl        *template.Template
	sections    []template.HTML
	fingerprint string
	now         func() time.Time
}

// NewDocumentWriter creates a page writer. A nil cfg uses the defaults.
func NewDocumentWriter(w io.Writer, cfg *config.Config) (*DocumentWriter, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	tmpl, err := template.New("page").Funcs(sprig.HtmlFuncMap()).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("writers: parse page template: %w", err)
	}
	return &DocumentWriter{w: w, cfg: cfg, tmpl: tmpl, now: time.Now}, nil
}

// SetSourceFingerprint records a murmur3-64 fingerprint of the source
// report bytes, emitted in the page footer so consecutive runs over the
// same input are diffable at a glance.
func (dw *DocumentWriter) SetSourceFingerprint(source []byte) {
	dw.fingerprint = fmt.Sprintf("%016x", murmur3.Sum64(source))
}

// Add serializes a rendered section into the page body.
func (dw *DocumentWriter) Add(section *html.Node) error {
	s, err := dom.Render(section)
	if err != nil {
		return fmt.Errorf("writers: serialize section: %w", err)
	}
	dw.sections = append(dw.sections, template.HTML(s))
	return nil
}

// Close writes the complete document.
func (dw *DocumentWriter) Close() error {
	data := struct {
		Title       string
		Theme       string
		CSS         template.CSS
		Sections    []template.HTML
		GeneratedAt string
		Fingerprint string
	}{
		Title:       dw.cfg.Title,
		Theme:       dw.cfg.Theme,
		CSS:         template.CSS(reportCSS),
		Sections:    dw.sections,
		GeneratedAt: dw.now().UTC().Format(time.RFC3339),
		Fingerprint: dw.fingerprint,
	}
	if err := dw.tmpl.Execute(dw.w, data); err != nil {
		return fmt.Errorf("writers: render page: %w", err)
	}
	return nil
}
