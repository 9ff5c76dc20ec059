package dom

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Audit titles and descriptions use two slivers of markdown: backtick
// code spans and [text](url) links. Nothing else is interpreted; the
// two conversion modes below are deliberately separate so titles never
// grow links and descriptions never grow stray code spans from odd
// backtick counts.

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)

// ConvertCodeSnippets converts backtick code spans in text into <code>
// elements, returning a fragment of alternating text and code nodes.
// An unpaired trailing backtick is left as literal text.
func ConvertCodeSnippets(text string) *html.Node {
	frag := NewFragment()
	parts := strings.Split(text, "`")
	for i, part := range parts {
		if part == "" {
			continue
		}
		// Odd indexes sit between a backtick pair, unless the closing
		// backtick never arrived.
		if i%2 == 1 && i < len(parts)-1 {
			code := NewChildOf(frag, "code")
			code.AppendChild(NewText(part))
			continue
		}
		if i%2 == 1 {
			part = "`" + part
		}
		frag.AppendChild(NewText(part))
	}
	return frag
}

// ConvertLinks converts [text](url) spans into anchor elements and
// leaves everything else as text. Only http(s) URLs convert; anything
// else stays literal. Anchors open in a new tab with rel noopener.
func ConvertLinks(text string) *html.Node {
	frag := NewFragment()
	last := 0
	for _, loc := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			frag.AppendChild(NewText(text[last:loc[0]]))
		}
		a := NewChildOf(frag, "a")
		SetAttr(a, "href", text[loc[4]:loc[5]])
		SetAttr(a, "rel", "noopener")
		SetAttr(a, "target", "_blank")
		a.AppendChild(NewText(text[loc[2]:loc[3]]))
		last = loc[1]
	}
	if last < len(text) {
		frag.AppendChild(NewText(text[last:]))
	}
	return frag
}
