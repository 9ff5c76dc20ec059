// Package audit provides the shared result model consumed by the
// category renderer and the document writers.
//
// A report document carries a flat map of audit results plus an ordered
// list of categories; each category references audits by id through
// AuditRefs. The types here mirror that wire format and resolve the
// references into direct pointers so render code never re-joins by id.
package audit

import "github.com/love0324/lighthouse/pkg/details"

// ScoreDisplayMode governs how an audit's result is visually classified.
// All values are the lowercase wire strings; "not-applicable" is spelled
// "notApplicable" in report JSON.
type ScoreDisplayMode string

const (
	// Binary audits pass or fail outright (score 1 or 0).
	Binary ScoreDisplayMode = "binary"

	// Numeric audits carry a continuous score in [0,1].
	Numeric ScoreDisplayMode = "numeric"

	// Manual audits cannot be scored automatically and are surfaced as
	// checks for the reader to perform.
	Manual ScoreDisplayMode = "manual"

	// Informative audits report data without a pass/fail judgement.
	Informative ScoreDisplayMode = "informative"

	// NotApplicable audits did not apply to the tested page.
	NotApplicable ScoreDisplayMode = "notApplicable"

	// Error audits failed to produce a result at all.
	Error ScoreDisplayMode = "error"
)

// IsValid reports whether m is a recognized display mode.
func (m ScoreDisplayMode) IsValid() bool {
	switch m {
	case Binary, Numeric, Manual, Informative, NotApplicable, Error:
		return true
	}
	return false
}

// String returns the display mode as a string.
func (m ScoreDisplayMode) String() string {
	return string(m)
}

// Normalize maps unrecognized wire values onto the closed enum so every
// downstream switch stays exhaustive: with a score present the audit is
// treated as binary, without one as informative.
func (m ScoreDisplayMode) Normalize(score *float64) ScoreDisplayMode {
	if m.IsValid() {
		return m
	}
	if score != nil {
		return Binary
	}
	return Informative
}

// Result is one evaluated check.
type Result struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Score            *float64         `json:"score"`
	ScoreDisplayMode ScoreDisplayMode `json:"scoreDisplayMode"`
	DisplayValue     string           `json:"displayValue,omitempty"`
	Explanation      string           `json:"explanation,omitempty"`
	ErrorMessage     string           `json:"errorMessage,omitempty"`
	Details          *details.Payload `json:"details,omitempty"`
}

// Ref ties a category to one of its audits, optionally placing it in a
// display group. Result is populated during report resolution.
type Ref struct {
	AuditID string  `json:"id"`
	Weight  float64 `json:"weight"`
	Group   string  `json:"group,omitempty"`

	Result *Result `json:"-"`
}

// Category is a named collection of audits with an aggregate score.
type Category struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	ManualDescription string   `json:"manualDescription,omitempty"`
	Score             *float64 `json:"score"`
	AuditRefs         []Ref    `json:"auditRefs"`
}

// Group is display-only metadata for a sub-collection of audits within a
// category. It carries no scoring semantics.
type Group struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
