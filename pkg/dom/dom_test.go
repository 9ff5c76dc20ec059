package dom

import (
	"strings"
	"testing"
)

func TestNewElement_Classes(t *testing.T) {
	n := NewElement("div", "lh-audit", "lh-audit--pass")
	if n.Data != "div" {
		t.Fatalf("tag = %q, want div", n.Data)
	}
	if !HasClass(n, "lh-audit") || !HasClass(n, "lh-audit--pass") {
		t.Errorf("missing classes, got %q", Attr(n, "class"))
	}
	if HasClass(n, "lh-audit--fail") {
		t.Error("HasClass matched a class that is not present")
	}
}

func TestAddClass_AppendsToExisting(t *testing.T) {
	n := NewElement("span", "a")
	AddClass(n, "b", "c")
	if got := Attr(n, "class"); got != "a b c" {
		t.Errorf("class = %q, want %q", got, "a b c")
	}
}

func TestSetAttr_ReplacesExisting(t *testing.T) {
	n := NewElement("a")
	SetAttr(n, "href", "https://one.example")
	SetAttr(n, "href", "https://two.example")
	if got := Attr(n, "href"); got != "https://two.example" {
		t.Errorf("href = %q", got)
	}
	if len(n.Attr) != 1 {
		t.Errorf("attr count = %d, want 1", len(n.Attr))
	}
}

func TestFind_Selectors(t *testing.T) {
	root := NewElement("div")
	child := NewChildOf(root, "span", "target")
	SetAttr(child, "id", "the-one")
	NewChildOf(root, "span", "other")

	if got := Find(root, ".target"); got != child {
		t.Error("class selector did not find the child")
	}
	if got := Find(root, "#the-one"); got != child {
		t.Error("id selector did not find the child")
	}
	if got := Find(root, "span.target"); got != child {
		t.Error("tag.class selector did not find the child")
	}
	if got := Find(root, ".absent"); got != nil {
		t.Error("expected nil for unmatched selector")
	}
}

func TestFindAll_DepthFirstOrder(t *testing.T) {
	root := NewElement("div")
	outer := NewChildOf(root, "div", "hit")
	inner := NewChildOf(outer, "div", "hit")
	sibling := NewChildOf(root, "div", "hit")

	got := FindAll(root, ".hit")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != outer || got[1] != inner || got[2] != sibling {
		t.Error("results not in depth-first order")
	}
}

func TestClone_Detached(t *testing.T) {
	orig := NewElement("div", "a")
	NewChildOf(orig, "span", "b")

	cp := Clone(orig)
	if cp.Parent != nil {
		t.Error("clone still attached")
	}
	AddClass(cp.FirstChild, "mutated")
	if HasClass(orig.FirstChild, "mutated") {
		t.Error("mutating the clone changed the original")
	}
}

func TestSetText_ReplacesChildren(t *testing.T) {
	n := NewElement("span")
	SetText(n, "first")
	SetText(n, "second")
	if got := Text(n); got != "second" {
		t.Errorf("text = %q, want second", got)
	}
}

func TestRender_FragmentEmitsOnlyChildren(t *testing.T) {
	frag := NewFragment()
	frag.AppendChild(NewText("a "))
	NewChildOf(frag, "code").AppendChild(NewText("b"))

	out, err := Render(frag)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "a <code>b</code>" {
		t.Errorf("render = %q", out)
	}
}

func TestRender_EscapesText(t *testing.T) {
	n := NewElement("span")
	SetText(n, "<script>")
	out, err := Render(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("text not escaped: %q", out)
	}
}
