package style_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/locksmith/internal/ui/style"
)

func TestTheme_AsciiRendersPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)

	theme := style.NewTheme(r)

	assert.Equal(t, "ok", theme.Good.Render("ok"))
	assert.Equal(t, "broken", theme.Bad.Render("broken"))
	assert.Equal(t, "1 checked", theme.Strong.Render("1 checked"))
}
