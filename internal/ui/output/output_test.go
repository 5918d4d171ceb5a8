package output_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/locksmith/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNewRenderer_PlainTextWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := output.NewRenderer(&bytes.Buffer{})

	assert.Equal(t, termenv.Ascii, r.ColorProfile())
	assert.Equal(t, "hello", r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("hello"))
}
