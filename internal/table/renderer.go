package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/afk552/people/internal/person"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // style only when writing to a terminal
	ColorAlways ColorMode = "always" // style regardless of destination
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates s as a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("table: color mode must be auto, always, or never, got %q", s)
	}
}

// Options configures a Renderer.
type Options struct {
	Color ColorMode // default: ColorAuto
}

// Renderer writes tables and messages to a single destination.
type Renderer struct {
	w      io.Writer
	styled bool
	border lipgloss.Style
	header lipgloss.Style
	notice lipgloss.Style
}

// NewRenderer returns a Renderer for w. With ColorAuto, styling is enabled
// only when w is a terminal.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	styled := false
	switch opts.Color {
	case ColorAlways:
		styled = true
	case ColorNever:
	default:
		styled = isTTY(w)
	}

	lr := lipgloss.NewRenderer(w)
	if opts.Color == ColorAlways {
		lr.SetColorProfile(termenv.ANSI256)
	}

	return &Renderer{
		w:      w,
		styled: styled,
		border: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		header: lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		notice: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styled reports whether the renderer emits terminal styling.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Render writes people as a bordered table, or EmptyMessage when there are none.
func (r *Renderer) Render(people []person.Person) error {
	if len(people) == 0 {
		return r.Message(EmptyMessage)
	}
	return r.write(r.table(people))
}

// Message writes a single informational line.
func (r *Renderer) Message(msg string) error {
	return r.write(r.style(r.notice, msg) + "\n")
}

func (r *Renderer) table(people []person.Person) string {
	line := r.style(r.border, borderLine())

	var b strings.Builder
	b.WriteString(line + "\n")
	b.WriteString(r.style(r.header, headerLine()) + "\n")
	b.WriteString(line + "\n")
	for _, cells := range Rows(people) {
		b.WriteString(rowLine(cells) + "\n")
	}
	b.WriteString(line + "\n")
	return b.String()
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return fmt.Errorf("table: writing output: %w", err)
	}
	return nil
}
