package writers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/render"
)

func fptr(v float64) *float64 { return &v }

func TestPDFWriter_ProducesDocument(t *testing.T) {
	pw := NewPDFWriter(nil)
	cat := &audit.Category{
		ID:    "performance",
		Title: "Performance",
		Score: fptr(0.42),
		AuditRefs: []audit.Ref{
			{AuditID: "slow", Result: &audit.Result{
				ID: "slow", Title: "Slow resource", Score: fptr(0),
				ScoreDisplayMode: audit.Binary, DisplayValue: "4.2 s",
			}},
		},
	}
	pw.AddCategory(cat, render.Summarize(cat))

	buf := &bytes.Buffer{}
	require.NoError(t, pw.Output(buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "output is not a PDF")
	assert.Greater(t, buf.Len(), 500)
}

func TestPDFWriter_NilScoreCategory(t *testing.T) {
	pw := NewPDFWriter(nil)
	cat := &audit.Category{ID: "pwa", Title: "PWA"}
	pw.AddCategory(cat, render.Summarize(cat))

	buf := &bytes.Buffer{}
	require.NoError(t, pw.Output(buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#ff4e42")
	assert.Equal(t, [3]int{255, 78, 66}, [3]int{r, g, b})

	r, g, b = hexToRGB("garbage")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{r, g, b})
}
