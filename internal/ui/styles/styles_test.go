package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderLines_PreservesShape(t *testing.T) {
	art := "  .---.\n  |   |__\n\n  '---'"

	got := ansi.Strip(RenderLines(ArtStyle, art))

	assert.Equal(t, art, got, "lines must not be padded or trimmed")
}

func TestRenderLines_Empty(t *testing.T) {
	assert.Equal(t, "", RenderLines(lipgloss.NewStyle(), ""))
}

func TestApplyColor_Disabled(t *testing.T) {
	ApplyColor(false)
	t.Cleanup(func() { ApplyColor(true) })

	out := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("latte")
	assert.Equal(t, "latte", out, "ascii profile emits no escape codes")
}
