// Package report renders a bag of diagnostics to a terminal. The
// caret-under-the-span layout is grounded on internal/diagfmt/preview.go's
// span-to-line-block offset math, trimmed to single-line spans: the core
// never reports a diagnostic spanning more than one line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"loxwalk/internal/diag"
	"loxwalk/internal/source"
)

const tabWidth = 4

// Sink collects diagnostics as they are reported and renders them once
// the run (or REPL line) that produced them has finished.
type Sink struct {
	bag *diag.Bag
}

// NewSink wraps bag for rendering.
func NewSink(bag *diag.Bag) *Sink {
	return &Sink{bag: bag}
}

// Report appends d to the sink's bag. A nil diagnostic is ignored.
func (s *Sink) Report(d *diag.Diagnostic) {
	s.bag.Add(d)
}

// Len returns the number of diagnostics collected so far.
func (s *Sink) Len() int {
	return s.bag.Len()
}

// HasErrors reports whether any collected diagnostic is SevError or above.
func (s *Sink) HasErrors() bool {
	return s.bag.HasErrors()
}

var (
	severityColor = map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}
	locationColor = color.New(color.FgHiBlack)
	caretColor    = color.New(color.FgRed, color.Bold)
)

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevWarning:
		return "WARN"
	case diag.SevInfo:
		return "INFO"
	default:
		return "ERROR"
	}
}

// Render writes every diagnostic in the sink, in report order, to w. fs
// resolves each diagnostic's span back to a source line for the caret
// preview; a span whose file is missing from fs is rendered without one.
func (s *Sink) Render(w io.Writer, fs *source.FileSet) {
	for _, d := range s.bag.Items() {
		renderOne(w, fs, d)
	}
}

func renderOne(w io.Writer, fs *source.FileSet, d *diag.Diagnostic) {
	col := severityColor[d.Severity]
	if col == nil {
		col = severityColor[diag.SevError]
	}
	fmt.Fprintf(w, "[%s] %s\n", col.Sprint(severityLabel(d.Severity)), d.Message)

	if file := fs.Get(d.Primary.File); file != nil {
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s\n", locationColor.Sprintf("At %s:%d:%d", file.Path, start.Line, start.Col))
		writeCaretLine(w, file, start, end)
	}

	for _, n := range d.Notes {
		if nf := fs.Get(n.Span.File); nf != nil {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s (%s:%d:%d)\n", n.Msg, nf.Path, ns.Line, ns.Col)
		} else {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
		}
	}
	fmt.Fprintln(w)
}

// writeCaretLine prints the source line containing start, underlining the
// span from start through end. A span crossing a line boundary (end.Line
// != start.Line) is clamped to the rest of start's line, since every
// diagnostic raised by this interpreter spans a single token or expression
// that never itself contains a newline. Column alignment accounts for
// tabs and wide runes the way internal/diagfmt/pretty.go's visualWidthUpTo
// does, since source span columns are byte offsets, not terminal columns.
func writeCaretLine(w io.Writer, file *source.File, start, end source.LineCol) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	line = strings.TrimRight(line, "\r\n")

	byteEnd := int(start.Col) - 1 + 1
	if end.Line == start.Line && int(end.Col) > int(start.Col) {
		byteEnd = int(end.Col) - 1
	}
	if byteEnd > len(line) {
		byteEnd = len(line)
	}
	if byteEnd <= int(start.Col)-1 {
		byteEnd = int(start.Col)
	}

	visualStart := visualWidthUpTo(line, start.Col, tabWidth)
	visualEnd := visualWidthUpTo(line, uint32(byteEnd)+1, tabWidth)
	if visualEnd <= visualStart {
		visualEnd = visualStart + 1
	}

	fmt.Fprintf(w, "    %s\n", line)
	padding := strings.Repeat(" ", 4+visualStart)
	carets := strings.Repeat("^", visualEnd-visualStart)
	fmt.Fprintf(w, "%s%s\n", padding, caretColor.Sprint(carets))
}

// visualWidthUpTo computes the terminal column width of s up to the
// given 1-based byte column, expanding tabs to tabWidth and widening
// East Asian runes via go-runewidth.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}
