// Package render builds the DOM section for one audit category: header
// with score gauge, then failed, manual, passed, and not-applicable
// sections, each optionally subdivided by display group.
package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/config"
	"github.com/love0324/lighthouse/pkg/details"
	"github.com/love0324/lighthouse/pkg/dom"
	"github.com/love0324/lighthouse/pkg/rating"
)

// DetailsRenderer renders an audit's structured details payload. A nil
// return means the payload carries nothing displayable.
type DetailsRenderer interface {
	Render(p *details.Payload) *html.Node
	SetTemplateContext(doc *dom.Document)
}

// CategoryRenderer renders category sections. Safe to reuse across
// categories within a run; not safe for concurrent use because the
// template context is reassignable.
type CategoryRenderer struct {
	doc     *dom.Document
	details DetailsRenderer
	cfg     *config.Config
}

// New creates a renderer over the given template context. A nil cfg
// falls back to config.Default(); a nil det leaves details unrendered.
func New(doc *dom.Document, det DetailsRenderer, cfg *config.Config) *CategoryRenderer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CategoryRenderer{doc: doc, details: det, cfg: cfg}
}

// SetTemplateContext replaces the template context used for all
// subsequent rendering, forwarding it to the details renderer.
func (cr *CategoryRenderer) SetTemplateContext(doc *dom.Document) {
	cr.doc = doc
	if cr.details != nil {
		cr.details.SetTemplateContext(doc)
	}
}

// Render builds the complete section tree for a category. groups maps
// group id to display metadata; ids without metadata render with the id
// itself as title.
func (cr *CategoryRenderer) Render(cat *audit.Category, groups map[string]*audit.Group) *html.Node {
	section := dom.NewElement("div", "lh-category")
	dom.SetAttr(section, "id", cat.ID)
	section.AppendChild(cr.renderHeader(cat))

	plan := buildPlan(cat.AuditRefs)

	if plan.hasFailed() {
		section.AppendChild(cr.renderFailedSection(plan, groups))
	}
	if len(plan.manual) > 0 {
		section.AppendChild(cr.renderManualSection(plan, cat.ManualDescription))
	}
	if plan.hasPassed() {
		section.AppendChild(cr.renderPassedSection(plan, groups))
	}
	if plan.hasNotApplicable() {
		section.AppendChild(cr.renderNotApplicableSection(plan, groups))
	}
	return section
}

// renderHeader builds the category header: gauge, title, description.
func (cr *CategoryRenderer) renderHeader(cat *audit.Category) *html.Node {
	header := cr.doc.Component("category-header")
	gaugeSlot := dom.Find(header, ".lh-category-header__gauge")
	gaugeSlot.AppendChild(cr.RenderGauge(cat))
	title := dom.Find(header, ".lh-category-header__title")
	title.AppendChild(dom.ConvertCodeSnippets(cat.Title))
	if cat.Description != "" {
		desc := dom.Find(header, ".lh-category-header__description")
		desc.AppendChild(dom.ConvertLinks(cat.Description))
	}
	return header
}

// Failed audits render in the open, never behind a disclosure: ungrouped
// ones as plain audit elements, grouped ones as expanded unadorned
// groups.
func (cr *CategoryRenderer) renderFailedSection(plan *renderPlan, groups map[string]*audit.Group) *html.Node {
	clump := dom.NewElement("div", "lh-clump", "lh-clump--failed")
	for _, ref := range plan.ungrouped.failed {
		clump.AppendChild(cr.renderAudit(ref))
	}
	for _, id := range plan.groupOrder {
		g := plan.groups[id]
		if len(g.failed) == 0 {
			continue
		}
		clump.AppendChild(cr.renderAuditGroup(id, groups[id], g.failed, groupExpanded|groupUnadorned))
	}
	return clump
}

func (cr *CategoryRenderer) renderManualSection(plan *renderPlan, manualDescription string) *html.Node {
	clump := cr.newCollapsibleClump("manual", cr.cfg.Labels.ManualChecks, manualDescription)
	for _, ref := range plan.manual {
		clump.AppendChild(cr.renderAudit(ref))
	}
	cr.setClumpItemCount(clump)
	return clump
}

func (cr *CategoryRenderer) renderPassedSection(plan *renderPlan, groups map[string]*audit.Group) *html.Node {
	clump := cr.newCollapsibleClump("passed", cr.cfg.Labels.PassedAudits, "")
	for _, ref := range plan.ungrouped.passed {
		clump.AppendChild(cr.renderAudit(ref))
	}
	for _, id := range plan.groupOrder {
		g := plan.groups[id]
		if len(g.passed) == 0 {
			continue
		}
		clump.AppendChild(cr.renderAuditGroup(id, groups[id], g.passed, 0))
	}
	cr.setClumpItemCount(clump)
	return clump
}

func (cr *CategoryRenderer) renderNotApplicableSection(plan *renderPlan, groups map[string]*audit.Group) *html.Node {
	clump := cr.newCollapsibleClump("not-applicable", cr.cfg.Labels.NotApplicable, "")
	for _, ref := range plan.ungrouped.notApplicable {
		clump.AppendChild(cr.renderAudit(ref))
	}
	for _, id := range plan.groupOrder {
		g := plan.groups[id]
		if len(g.notApplicable) == 0 {
			continue
		}
		clump.AppendChild(cr.renderAuditGroup(id, groups[id], g.notApplicable, 0))
	}
	cr.setClumpItemCount(clump)
	return clump
}

// newCollapsibleClump clones the clump template as a collapsed top-level
// section with the given modifier class and title.
func (cr *CategoryRenderer) newCollapsibleClump(kind, title, description string) *html.Node {
	clump := cr.doc.Component("clump")
	dom.AddClass(clump, "lh-clump--"+kind)
	dom.SetText(dom.Find(clump, ".lh-clump__title"), title)
	if description != "" {
		desc := dom.NewElement("div", "lh-clump__description")
		desc.AppendChild(dom.ConvertLinks(description))
		clump.AppendChild(desc)
	}
	return clump
}

// setClumpItemCount fills the clump's count badge. Audit-unit elements
// are counted recursively so nested sub-groups contribute their audits;
// when the clump holds no audit units at all the immediate child count
// (minus the summary header) stands in.
func (cr *CategoryRenderer) setClumpItemCount(clump *html.Node) {
	count := len(dom.FindAll(clump, ".lh-audit"))
	if count == 0 {
		for c := clump.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.Data == "summary" {
				continue
			}
			count++
		}
	}
	dom.SetText(dom.Find(clump, ".lh-clump__count"), "("+strconv.Itoa(count)+")")
}

type groupFlags int

const (
	groupExpanded groupFlags = 1 << iota
	groupUnadorned
)

// renderAuditGroup builds a collapsible group container populated with
// the given audits. Unadorned groups drop the chevron affordance.
func (cr *CategoryRenderer) renderAuditGroup(id string, meta *audit.Group, refs []audit.Ref, flags groupFlags) *html.Node {
	group := cr.doc.Component("clump")
	dom.SetAttr(group, "class", "lh-audit-group")
	title := id
	var description string
	if meta != nil {
		title = meta.Title
		description = meta.Description
	}
	dom.SetText(dom.Find(group, ".lh-clump__title"), title)
	dom.SetText(dom.Find(group, ".lh-clump__count"), "("+strconv.Itoa(len(refs))+")")
	if flags&groupExpanded != 0 {
		dom.SetAttr(group, "open", "")
	}
	if flags&groupUnadorned != 0 {
		dom.AddClass(group, "lh-audit-group--unadorned")
		if chevron := dom.Find(group, ".lh-clump__chevron"); chevron != nil {
			chevron.Parent.RemoveChild(chevron)
		}
	}
	if description != "" {
		desc := dom.NewElement("div", "lh-audit-group__description")
		desc.AppendChild(dom.ConvertLinks(description))
		group.AppendChild(desc)
	}
	for _, ref := range refs {
		group.AppendChild(cr.renderAudit(ref))
	}
	return group
}

// renderAudit builds one audit element from its resolved result.
func (cr *CategoryRenderer) renderAudit(ref audit.Ref) *html.Node {
	res := ref.Result
	el := cr.doc.Component("audit")
	dom.SetAttr(el, "id", res.ID)

	r := rating.Calculate(res.Score, res.ScoreDisplayMode)
	dom.AddClass(el, "lh-audit--"+r.String())
	switch res.ScoreDisplayMode {
	case audit.Manual, audit.Informative, audit.Error:
		dom.AddClass(el, "lh-audit--"+strings.ToLower(res.ScoreDisplayMode.String()))
	case audit.NotApplicable:
		dom.AddClass(el, "lh-audit--notapplicable")
	case audit.Binary, audit.Numeric:
	}

	title := dom.Find(el, ".lh-audit__title")
	title.AppendChild(dom.ConvertCodeSnippets(res.Title))

	if dv := rating.FormatDisplayValue(res.DisplayValue); dv != "" {
		dom.SetText(dom.Find(el, ".lh-audit__display-text"), dv)
	}

	if res.Description != "" {
		desc := dom.Find(el, ".lh-audit__description")
		desc.AppendChild(dom.ConvertLinks(res.Description))
	}

	content := dom.Find(el, ".lh-audit__content")

	if res.Explanation != "" {
		note := dom.NewChildOf(content, "div", "lh-audit-explanation")
		note.AppendChild(dom.NewText(res.Explanation))
	}

	if res.ScoreDisplayMode == audit.Error {
		titleRow := dom.Find(el, ".lh-audit__title-and-text")
		badge := cr.doc.Component("error-badge")
		dom.SetText(dom.Find(badge, ".lh-audit__error-icon"), cr.cfg.Labels.ErrorBadge)
		msg := res.ErrorMessage
		if msg == "" {
			msg = cr.cfg.Labels.MissingAuditInfo
		}
		dom.SetText(dom.Find(badge, ".lh-audit__error-tooltip"), msg)
		titleRow.AppendChild(badge)
	} else if res.Details != nil && cr.details != nil {
		if node := cr.details.Render(res.Details); node != nil {
			content.AppendChild(node)
		}
	}

	return el
}
