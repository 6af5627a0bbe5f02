// Package ui renders progress lines for the terminal. Status markers follow
// the doctor-style "[ OK ]" / "[MISS]" / "[FAIL]" / "[WARN]" layout and are
// colored with lipgloss when the destination supports it.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status markers printed at the start of a progress line.
const (
	MarkOK   = "[ OK ]"
	MarkMiss = "[MISS]"
	MarkFail = "[FAIL]"
	MarkWarn = "[WARN]"
	MarkInfo = "[INFO]"
)

// Printer writes styled progress output to a single writer.
type Printer struct {
	w io.Writer

	ok     lipgloss.Style
	miss   lipgloss.Style
	fail   lipgloss.Style
	warn   lipgloss.Style
	info   lipgloss.Style
	title  lipgloss.Style
	subtle lipgloss.Style
}

// NewPrinter creates a Printer whose color profile is detected from w, so
// buffers and pipes receive plain text.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = io.Discard
	}
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		ok:     r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		miss:   r.NewStyle().Foreground(lipgloss.Color("#FFB000")).Bold(true),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#FFB000")),
		info:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		subtle: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// Step prints a section header such as "Installing dependencies".
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf(format, args...)))
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) { p.line(p.ok, MarkOK, format, args...) }

// Miss prints a missing-item line.
func (p *Printer) Miss(format string, args ...any) { p.line(p.miss, MarkMiss, format, args...) }

// Fail prints a failure line.
func (p *Printer) Fail(format string, args ...any) { p.line(p.fail, MarkFail, format, args...) }

// Warn prints a non-fatal warning line.
func (p *Printer) Warn(format string, args ...any) { p.line(p.warn, MarkWarn, format, args...) }

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) { p.line(p.info, MarkInfo, format, args...) }

// Detail prints an indented, dimmed continuation line.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintf(p.w, "         %s\n", p.subtle.Render(fmt.Sprintf(format, args...)))
}

// Println writes an unstyled line.
func (p *Printer) Println(a ...any) { fmt.Fprintln(p.w, a...) }

// Printf writes unstyled formatted text.
func (p *Printer) Printf(format string, args ...any) { fmt.Fprintf(p.w, format, args...) }

func (p *Printer) line(style lipgloss.Style, mark, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", style.Render(mark), fmt.Sprintf(format, args...))
}
