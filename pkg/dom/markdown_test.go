package dom

import (
	"testing"

	"golang.org/x/net/html"
)

func TestConvertCodeSnippets(t *testing.T) {
	frag := ConvertCodeSnippets("Serve images in `next-gen` formats")
	out, err := Render(frag)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Serve images in <code>next-gen</code> formats" {
		t.Errorf("render = %q", out)
	}
}

func TestConvertCodeSnippets_UnpairedBacktick(t *testing.T) {
	frag := ConvertCodeSnippets("uses `width but never closes")
	out, err := Render(frag)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "uses `width but never closes" {
		t.Errorf("unpaired backtick mangled: %q", out)
	}
}

func TestConvertCodeSnippets_NoLinks(t *testing.T) {
	// Code-snippet mode must not linkify; titles never grow anchors.
	frag := ConvertCodeSnippets("see [docs](https://example.com)")
	if Find(frag, "a") != nil {
		t.Error("code-snippet mode produced an anchor")
	}
}

func TestConvertLinks(t *testing.T) {
	frag := ConvertLinks("Learn more in [the guide](https://example.com/guide).")
	a := Find(frag, "a")
	if a == nil {
		t.Fatal("no anchor produced")
	}
	if got := Attr(a, "href"); got != "https://example.com/guide" {
		t.Errorf("href = %q", got)
	}
	if Attr(a, "rel") != "noopener" || Attr(a, "target") != "_blank" {
		t.Error("anchor missing rel=noopener target=_blank")
	}
	if got := Text(a); got != "the guide" {
		t.Errorf("anchor text = %q", got)
	}
	if got := Text(frag); got != "Learn more in the guide." {
		t.Errorf("full text = %q", got)
	}
}

func TestConvertLinks_NonHTTPStaysLiteral(t *testing.T) {
	frag := ConvertLinks("bad [link](javascript:alert(1)) here")
	if Find(frag, "a") != nil {
		t.Error("non-http scheme converted to anchor")
	}
	if got := Text(frag); got != "bad [link](javascript:alert(1)) here" {
		t.Errorf("text = %q", got)
	}
}

func TestConvertLinks_MultipleLinks(t *testing.T) {
	frag := ConvertLinks("[a](https://a.example) and [b](https://b.example)")
	var count int
	for c := frag.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("anchor count = %d, want 2", count)
	}
}
