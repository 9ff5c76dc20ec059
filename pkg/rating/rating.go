// Package rating classifies numeric audit scores into display ratings
// and owns the pass/fail predicates the renderer branches on.
package rating

import (
	"strings"

	"github.com/love0324/lighthouse/pkg/audit"
)

// Rating is the visual classification of a score.
type Rating string

const (
	Pass    Rating = "pass"
	Average Rating = "average"
	Fail    Rating = "fail"
	Error   Rating = "error"
	Manual  Rating = "manual"
)

// Score thresholds, inclusive lower bounds.
const (
	passThreshold    = 0.90
	averageThreshold = 0.50
)

// String returns the rating as a string.
func (r Rating) String() string {
	return string(r)
}

// Calculate derives the rating for a score under a display mode. Manual
// and error modes force their own ratings regardless of the numeric
// score; not-applicable audits rate as pass. A nil score outside those
// modes rates as fail.
func Calculate(score *float64, mode audit.ScoreDisplayMode) Rating {
	switch mode {
	case audit.Manual:
		return Manual
	case audit.Error:
		return Error
	case audit.NotApplicable:
		return Pass
	case audit.Binary, audit.Numeric, audit.Informative:
		// fall through to the score
	}
	if score == nil {
		return Fail
	}
	switch {
	case *score >= passThreshold:
		return Pass
	case *score >= averageThreshold:
		return Average
	default:
		return Fail
	}
}

// ShowAsPassed reports whether res belongs with the passed audits.
// Informative, manual, and not-applicable audits always show as passed;
// errored audits never do; binary and numeric audits pass on threshold.
func ShowAsPassed(res *audit.Result) bool {
	switch res.ScoreDisplayMode {
	case audit.Manual, audit.NotApplicable, audit.Informative:
		return true
	case audit.Error:
		return false
	case audit.Binary, audit.Numeric:
	}
	return res.Score != nil && *res.Score >= passThreshold
}

// FormatDisplayValue normalizes an audit's display value for rendering,
// collapsing internal whitespace runs left by upstream templating.
func FormatDisplayValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
