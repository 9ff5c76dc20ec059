package ui

import (
	"fmt"
	"io"
	"math"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/rating"
	"github.com/love0324/lighthouse/pkg/render"
)

// PrintCategorySummary writes a one-line scored summary for a category:
// colored score, title, and per-section counts.
func PrintCategorySummary(w io.Writer, cat *audit.Category, s render.Summary) {
	r := rating.Calculate(cat.Score, audit.Numeric)
	score := "--"
	if cat.Score != nil {
		score = fmt.Sprintf("%3d", int(math.Round(*cat.Score*100)))
	}

	glyph := Icon("●", "*")
	switch r {
	case rating.Average:
		glyph = Icon("◆", "~")
	case rating.Fail, rating.Error:
		glyph = Icon("▲", "!")
	case rating.Pass, rating.Manual:
	}

	fmt.Fprintf(w, "%s %s %s  %s\n",
		RatingStyle(r).Render(glyph+" "+score),
		titleStyle.Render(cat.Title),
		mutedStyle.Render(fmt.Sprintf("(%s)", cat.ID)),
		mutedStyle.Render(fmt.Sprintf("%d failed, %d passed, %d n/a, %d manual",
			s.Failed, s.Passed, s.NotApplicable, s.Manual)),
	)
}
