// Package styles contains Lip Gloss style definitions.
package styles

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Shop palette. Adaptive colors pick the light or dark variant from the terminal background.
var (
	CoffeeColor    = lipgloss.AdaptiveColor{Light: "#6F4E37", Dark: "#C8A27A"}
	CreamColor     = lipgloss.AdaptiveColor{Light: "#8A6D3B", Dark: "#F3E5AB"}
	SteamColor     = lipgloss.AdaptiveColor{Light: "#7A7A7A", Dark: "#BBBBBB"}
	MintColor      = lipgloss.AdaptiveColor{Light: "#1B8A5A", Dark: "#73F59F"}
	BerryColor     = lipgloss.AdaptiveColor{Light: "#B03060", Dark: "#FF8787"}
	TextMutedColor = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"}
	BorderColor    = lipgloss.AdaptiveColor{Light: "#C8A27A", Dark: "#6F4E37"}
)

// Text styles shared by the commands.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(CoffeeColor)
	ArtStyle       = lipgloss.NewStyle().Foreground(CreamColor)
	NarrativeStyle = lipgloss.NewStyle().Foreground(SteamColor)
	StepStyle      = lipgloss.NewStyle().Foreground(MintColor)
	WarningStyle   = lipgloss.NewStyle().Foreground(BerryColor)
	MutedStyle     = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)
)

// ApplyColor selects the output color profile. Color is disabled when enabled is false
// or when NO_COLOR is set in the environment.
func ApplyColor(enabled bool) {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// RenderLines styles each line of s separately. Unlike Style.Render on a multi-line
// string it never pads lines to a common width, so art keeps its exact shape.
func RenderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
