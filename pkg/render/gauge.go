package render

import (
	"math"
	"strconv"

	"golang.org/x/net/html"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/dom"
	"github.com/love0324/lighthouse/pkg/rating"
)

// Circumference of the gauge circle (2π × r for the template's r=53,
// rounded to the constant the stylesheet animates against).
const gaugeCircumference = 329

// RenderGauge builds the circular score indicator for a category. A nil
// score renders a "?" placeholder with an explanatory tooltip and an
// empty arc.
func (cr *CategoryRenderer) RenderGauge(cat *audit.Category) *html.Node {
	return cr.renderGauge(cat.Score, audit.Numeric, cat.Title)
}

func (cr *CategoryRenderer) renderGauge(score *float64, mode audit.ScoreDisplayMode, label string) *html.Node {
	wrapper := cr.doc.Component("gauge")

	r := rating.Calculate(score, mode)
	if score == nil && mode != audit.Manual && mode != audit.Error {
		dom.AddClass(wrapper, "lh-gauge__wrapper--not-applicable")
	} else {
		dom.AddClass(wrapper, "lh-gauge__wrapper--"+r.String())
	}

	// Arc length scales linearly with the score; a missing score draws
	// nothing.
	value := 0.0
	if score != nil {
		value = *score
	}
	arc := dom.Find(wrapper, ".lh-gauge-arc")
	dom.SetAttr(arc, "stroke-dasharray",
		strconv.FormatFloat(value*gaugeCircumference, 'f', -1, 64)+" "+strconv.Itoa(gaugeCircumference))

	percentage := dom.Find(wrapper, ".lh-gauge__percentage")
	if score == nil {
		dom.SetText(percentage, "?")
		dom.SetAttr(percentage, "title", cr.cfg.Labels.ScoreUnavailable)
	} else {
		dom.SetText(percentage, strconv.Itoa(int(math.Round(value*100))))
	}

	if label != "" {
		dom.SetText(dom.Find(wrapper, ".lh-gauge__label"), label)
	}
	return wrapper
}
