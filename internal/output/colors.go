package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styler colors text when writing to a terminal and passes it through otherwise
type Styler struct {
	enabled bool
}

// NewStyler enables styling when w is a terminal and NO_COLOR is unset
func NewStyler(w io.Writer) Styler {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return Styler{}
	}
	return Styler{enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s Styler) render(color, text string) string {
	if !s.enabled {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// Red colors text red
func (s Styler) Red(text string) string { return s.render("1", text) }

// Green colors text green
func (s Styler) Green(text string) string { return s.render("2", text) }

// Yellow colors text yellow
func (s Styler) Yellow(text string) string { return s.render("3", text) }

// Cyan colors text cyan
func (s Styler) Cyan(text string) string { return s.render("6", text) }

// Dim renders text faint
func (s Styler) Dim(text string) string {
	if !s.enabled {
		return text
	}
	return lipgloss.NewStyle().Faint(true).Render(text)
}
