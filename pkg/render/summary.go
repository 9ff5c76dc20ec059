package render

import "github.com/love0324/lighthouse/pkg/audit"

// Summary is the per-section audit count for a category, computed with
// the same classification the renderer uses.
type Summary struct {
	Failed        int
	Passed        int
	NotApplicable int
	Manual        int
}

// Total returns the number of classified audits.
func (s Summary) Total() int {
	return s.Failed + s.Passed + s.NotApplicable + s.Manual
}

// FailedAudits returns the category's failed refs in render order:
// ungrouped first, then grouped in first-seen group order.
func FailedAudits(cat *audit.Category) []audit.Ref {
	plan := buildPlan(cat.AuditRefs)
	failed := append([]audit.Ref(nil), plan.ungrouped.failed...)
	for _, id := range plan.groupOrder {
		failed = append(failed, plan.groups[id].failed...)
	}
	return failed
}

// Summarize classifies a category's audits without rendering them.
func Summarize(cat *audit.Category) Summary {
	plan := buildPlan(cat.AuditRefs)
	s := Summary{Manual: len(plan.manual)}
	s.Failed = len(plan.ungrouped.failed)
	s.Passed = len(plan.ungrouped.passed)
	s.NotApplicable = len(plan.ungrouped.notApplicable)
	for _, g := range plan.groups {
		s.Failed += len(g.failed)
		s.Passed += len(g.passed)
		s.NotApplicable += len(g.notApplicable)
	}
	return s
}
