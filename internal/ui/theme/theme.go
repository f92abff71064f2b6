package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Agreement scale, strongest disagree to strongest agree.
var ScaleColors = []color.Color{
	lipgloss.Color("#F43F5E"),
	lipgloss.Color("#FB7185"),
	lipgloss.Color("#FDA4AF"),
	lipgloss.Color("#94A3B8"),
	lipgloss.Color("#86EFAC"),
	lipgloss.Color("#4ADE80"),
	lipgloss.Color("#22C55E"),
}

// Results
var (
	Winner = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Weight = lipgloss.NewStyle().
		Foreground(TextDim)

	Negative = lipgloss.NewStyle().
			Foreground(Error)
)
