// Package ui provides the terminal presentation layer for the CLI:
// lipgloss styles keyed by rating and capability-aware glyph selection.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/love0324/lighthouse/pkg/rating"
)

// Rating colors matching the report stylesheet.
var (
	PassColor    = lipgloss.Color("#0CCE6B")
	AverageColor = lipgloss.Color("#FFA400")
	FailColor    = lipgloss.Color("#FF4E42")
	MutedColor   = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(MutedColor)

	ratingStyles = map[rating.Rating]lipgloss.Style{
		rating.Pass:    lipgloss.NewStyle().Foreground(PassColor).Bold(true),
		rating.Average: lipgloss.NewStyle().Foreground(AverageColor).Bold(true),
		rating.Fail:    lipgloss.NewStyle().Foreground(FailColor).Bold(true),
		rating.Error:   lipgloss.NewStyle().Foreground(FailColor).Bold(true),
		rating.Manual:  mutedStyle,
	}
)

// RatingStyle returns the lipgloss style for a rating.
func RatingStyle(r rating.Rating) lipgloss.Style {
	if s, ok := ratingStyles[r]; ok {
		return s
	}
	return mutedStyle
}

// RatingColor returns the hex color string for a rating, for consumers
// that style outside lipgloss (PDF, SVG).
func RatingColor(r rating.Rating) string {
	switch r {
	case rating.Pass:
		return string(PassColor)
	case rating.Average:
		return string(AverageColor)
	case rating.Fail, rating.Error:
		return string(FailColor)
	default:
		return string(MutedColor)
	}
}
