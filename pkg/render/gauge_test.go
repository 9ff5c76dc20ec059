package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/dom"
)

func gaugeFor(t *testing.T, score *float64) (arc, percentage string, wrapper string) {
	t.Helper()
	cr := newTestRenderer()
	g := cr.RenderGauge(&audit.Category{ID: "c", Title: "Cat", Score: score})
	arcNode := dom.Find(g, ".lh-gauge-arc")
	require.NotNil(t, arcNode)
	pct := dom.Find(g, ".lh-gauge__percentage")
	require.NotNil(t, pct)
	return dom.Attr(arcNode, "stroke-dasharray"), dom.Text(pct), dom.Attr(g, "class")
}

func TestRenderGauge_ArcEndpoints(t *testing.T) {
	arc, pct, _ := gaugeFor(t, fptr(0))
	assert.Equal(t, "0 329", arc)
	assert.Equal(t, "0", pct)

	arc, pct, _ = gaugeFor(t, fptr(1))
	assert.Equal(t, "329 329", arc)
	assert.Equal(t, "100", pct)
}

func TestRenderGauge_ArcMonotonic(t *testing.T) {
	arc, pct, cls := gaugeFor(t, fptr(0.5))
	assert.Equal(t, "164.5 329", arc)
	assert.Equal(t, "50", pct)
	assert.Contains(t, cls, "lh-gauge__wrapper--average")
}

func TestRenderGauge_NilScore(t *testing.T) {
	arc, pct, cls := gaugeFor(t, nil)
	assert.Equal(t, "0 329", arc, "nil score draws no arc")
	assert.Equal(t, "?", pct)
	assert.Contains(t, cls, "lh-gauge__wrapper--not-applicable")

	cr := newTestRenderer()
	g := cr.RenderGauge(&audit.Category{ID: "c", Title: "Cat"})
	tooltip := dom.Attr(dom.Find(g, ".lh-gauge__percentage"), "title")
	assert.NotEmpty(t, tooltip, "nil score needs an explanatory tooltip")
}

func TestRenderGauge_RatingClasses(t *testing.T) {
	_, _, cls := gaugeFor(t, fptr(0.95))
	assert.Contains(t, cls, "lh-gauge__wrapper--pass")

	_, _, cls = gaugeFor(t, fptr(0.2))
	assert.Contains(t, cls, "lh-gauge__wrapper--fail")
}

func TestRenderGauge_PercentageRounds(t *testing.T) {
	_, pct, _ := gaugeFor(t, fptr(0.907))
	assert.Equal(t, "91", pct)
}
