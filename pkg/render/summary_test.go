package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/love0324/lighthouse/pkg/audit"
)

func TestSummarize(t *testing.T) {
	cat := &audit.Category{ID: "c", AuditRefs: []audit.Ref{
		mkRef("f1", fptr(0), audit.Binary, ""),
		mkRef("f2", fptr(0.2), audit.Numeric, "g"),
		mkRef("p1", fptr(1), audit.Binary, ""),
		mkRef("na1", nil, audit.NotApplicable, "g"),
		{AuditID: "m1", Result: &audit.Result{ID: "m1", ScoreDisplayMode: audit.Manual}},
	}}
	s := Summarize(cat)
	assert.Equal(t, Summary{Failed: 2, Passed: 1, NotApplicable: 1, Manual: 1}, s)
	assert.Equal(t, 5, s.Total())
}

func TestFailedAudits_Order(t *testing.T) {
	cat := &audit.Category{ID: "c", AuditRefs: []audit.Ref{
		mkRef("grouped-first", fptr(0), audit.Binary, "g"),
		mkRef("ungrouped", fptr(0), audit.Binary, ""),
		mkRef("grouped-second", fptr(0), audit.Binary, "h"),
	}}
	failed := FailedAudits(cat)
	ids := []string{failed[0].AuditID, failed[1].AuditID, failed[2].AuditID}
	// Ungrouped renders first, then groups in first-seen order.
	assert.Equal(t, []string{"ungrouped", "grouped-first", "grouped-second"}, ids)
}
