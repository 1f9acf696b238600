package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/bjquiz/internal/strategy"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	seedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cellStyle = lipgloss.NewStyle().Width(3)
)

// actionColors groups plays by their primary action.
var actionColors = map[strategy.Action]lipgloss.Color{
	strategy.Hit:                "15",
	strategy.Stand:              "11",
	strategy.Split:              "10",
	strategy.SplitElseHit:       "10",
	strategy.DoubleElseHit:      "14",
	strategy.DoubleElseStand:    "14",
	strategy.SurrenderElseHit:   "9",
	strategy.SurrenderElseStand: "9",
	strategy.SurrenderElseSplit: "9",
}

func actionCell(a strategy.Action) string {
	style := cellStyle
	if c, ok := actionColors[a]; ok {
		style = style.Foreground(c)
	}
	return style.Render(a.Code())
}

// disableColor forces plain text output.
func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
