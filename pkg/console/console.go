// Package console prints progress lines for the user on standard output.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
)

// Printer writes one line per message. Lines are colored only when the
// destination is a terminal, so redirected output stays plain.
type Printer struct {
	w      io.Writer
	styled bool
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, styled: styled}
}

// Info prints a neutral status line.
func (p *Printer) Info(msg string) {
	p.print(infoStyle, msg)
}

// Success prints a line reporting a completed step.
func (p *Printer) Success(msg string) {
	p.print(successStyle, msg)
}

// Warning prints a line reporting a recoverable problem.
func (p *Printer) Warning(msg string) {
	p.print(warningStyle, msg)
}

func (p *Printer) print(style lipgloss.Style, msg string) {
	if p == nil {
		return
	}
	if p.styled {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}
