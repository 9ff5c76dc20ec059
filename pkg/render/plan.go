package render

import (
	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/rating"
)

// bucket partitions one group's audits by outcome.
type bucket struct {
	failed        []audit.Ref
	passed        []audit.Ref
	notApplicable []audit.Ref
}

func (b *bucket) empty() bool {
	return len(b.failed) == 0 && len(b.passed) == 0 && len(b.notApplicable) == 0
}

// renderPlan is the ordered classification of a category's audit refs.
// Group ids keep first-seen order so render order is deterministic for a
// given input order.
type renderPlan struct {
	manual     []audit.Ref
	ungrouped  bucket
	groupOrder []string
	groups     map[string]*bucket
}

// buildPlan classifies refs: manual audits first, the rest bucketed by
// group id and split into failed/passed/not-applicable. Pure function of
// its input.
func buildPlan(refs []audit.Ref) *renderPlan {
	plan := &renderPlan{groups: make(map[string]*bucket)}
	for _, ref := range refs {
		res := ref.Result
		if res.ScoreDisplayMode == audit.Manual {
			plan.manual = append(plan.manual, ref)
			continue
		}
		b := &plan.ungrouped
		if ref.Group != "" {
			g, ok := plan.groups[ref.Group]
			if !ok {
				g = &bucket{}
				plan.groups[ref.Group] = g
				plan.groupOrder = append(plan.groupOrder, ref.Group)
			}
			b = g
		}
		switch {
		case res.ScoreDisplayMode == audit.NotApplicable:
			// Not-applicable wins over any nominal passing score.
			b.notApplicable = append(b.notApplicable, ref)
		case rating.ShowAsPassed(res):
			b.passed = append(b.passed, ref)
		default:
			b.failed = append(b.failed, ref)
		}
	}
	return plan
}

func (p *renderPlan) hasFailed() bool {
	if len(p.ungrouped.failed) > 0 {
		return true
	}
	for _, g := range p.groups {
		if len(g.failed) > 0 {
			return true
		}
	}
	return false
}

func (p *renderPlan) hasPassed() bool {
	if len(p.ungrouped.passed) > 0 {
		return true
	}
	for _, g := range p.groups {
		if len(g.passed) > 0 {
			return true
		}
	}
	return false
}

func (p *renderPlan) hasNotApplicable() bool {
	if len(p.ungrouped.notApplicable) > 0 {
		return true
	}
	for _, g := range p.groups {
		if len(g.notApplicable) > 0 {
			return true
		}
	}
	return false
}
