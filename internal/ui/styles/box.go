package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderTitledBox wraps content in a rounded border with title embedded in the top
// edge. The box is as wide as the widest content line (or the title) plus one
// column of padding on each side.
func RenderTitledBox(content, title string, titleColor lipgloss.TerminalColor) string {
	borderStyle := lipgloss.NewStyle().Foreground(BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)

	lines := strings.Split(content, "\n")

	contentWidth := 0
	for _, line := range lines {
		contentWidth = max(contentWidth, ansi.StringWidth(line))
	}
	// "─ " + title + " ─" must fit in the top edge
	innerWidth := max(contentWidth+2, ansi.StringWidth(title)+4)

	var b strings.Builder
	b.WriteString(buildTopBorder(title, innerWidth, borderStyle, titleStyle))
	b.WriteString("\n")

	for _, line := range lines {
		pad := innerWidth - 1 - ansi.StringWidth(line)
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", max(pad, 0)))
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString("\n")
	}

	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

// buildTopBorder creates the top border with embedded title.
// borderStyle is used for border characters, titleStyle for the title text.
func buildTopBorder(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(borderTopLeft + borderTopRight)
	}

	if title == "" || innerWidth < 4 {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	displayTitle := TruncateString(title, innerWidth-4)

	// Inner: "─ " (2) + title + " " (1) + dashes = innerWidth
	remainingWidth := max(innerWidth-3-ansi.StringWidth(displayTitle), 0)

	return borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
		titleStyle.Render(displayTitle) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, remainingWidth)+borderTopRight)
}

// TruncateString truncates a string to fit within maxWidth, adding ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if ansi.StringWidth(s) <= maxWidth {
		return s
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	return ansi.Truncate(s, maxWidth, "...")
}
