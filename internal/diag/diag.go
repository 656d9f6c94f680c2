// Package diag implements the front end's diagnostic sink: a buffered
// collection of warnings and errors with source spans, speculative-parse
// mark/rollback, and caret-underlined rendering.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/ark1409/shiftc/internal/source"
)

// Kind classifies a diagnostic as a warning or an error.
type Kind int

const (
	Warning Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "warning"
}

// Span anchors a diagnostic to a source location: a 1-based line/column
// and a rune length used for the caret underline.
type Span struct {
	Source *source.Map
	Line   int
	Col    int
	Len    int
}

// Diagnostic is one buffered warning or error.
type Diagnostic struct {
	Kind    Kind
	Message string
	Span    Span
}

// Sink buffers diagnostics until an explicit Flush, classifies them as
// warning/error, optionally promotes warnings to errors, and supports
// nested mark/rollback save points so a speculative parse can discard
// everything it emitted.
//
// Mark/rollback is a stack over the combined pending-and-committed
// sequence: Mark records the current lengths of both slices; Rollback
// truncates both back to those lengths. This mirrors the token cursor's
// own mark/rollback contract (internal/lexer/cursor) so a caller can
// roll back both together, per spec's speculative-parse requirement.
type Sink struct {
	pending   []Diagnostic
	committed []Diagnostic
	marks     []markPoint

	printWarnings bool
	werror        bool
	color         bool
	writer        io.Writer
}

type markPoint struct {
	pendingLen   int
	committedLen int
}

// New creates a Sink that writes rendered diagnostics to w.
func New(w io.Writer) *Sink {
	return &Sink{writer: w}
}

// SetPrintWarnings controls whether warnings are rendered on flush.
func (s *Sink) SetPrintWarnings(v bool) { s.printWarnings = v }

// SetWerror promotes every warning to an error at emit time when true.
func (s *Sink) SetWerror(v bool) { s.werror = v }

// SetColor enables ANSI coloring of rendered diagnostics.
func (s *Sink) SetColor(v bool) { s.color = v }

// Emit appends a diagnostic to the pending buffer. If werror is set and
// kind is Warning, the diagnostic is recorded as an Error instead.
func (s *Sink) Emit(kind Kind, span Span, format string, args ...any) {
	if kind == Warning && s.werror {
		kind = Error
	}
	s.pending = append(s.pending, Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	})
}

// Mark pushes a save point and returns its index for a matching Rollback
// or PopMark.
func (s *Sink) Mark() int {
	s.marks = append(s.marks, markPoint{
		pendingLen:   len(s.pending),
		committedLen: len(s.committed),
	})
	return len(s.marks) - 1
}

// Rollback discards every diagnostic emitted or committed since the
// matching Mark, and pops the save point.
func (s *Sink) Rollback(mark int) {
	if mark < 0 || mark >= len(s.marks) {
		return
	}
	mp := s.marks[mark]
	s.pending = s.pending[:mp.pendingLen]
	s.committed = s.committed[:mp.committedLen]
	s.marks = s.marks[:mark]
}

// PopMark discards the most recently pushed save point without rolling
// back, keeping every diagnostic emitted since it.
func (s *Sink) PopMark() {
	if len(s.marks) == 0 {
		return
	}
	s.marks = s.marks[:len(s.marks)-1]
}

// Flush moves every pending diagnostic of the given kind into the
// committed list, in order, leaving diagnostics of other kinds pending.
func (s *Sink) Flush(kind Kind) {
	remaining := s.pending[:0]
	for _, d := range s.pending {
		if d.Kind == kind {
			s.committed = append(s.committed, d)
		} else {
			remaining = append(remaining, d)
		}
	}
	s.pending = remaining
}

// FlushAll moves every pending diagnostic into the committed list,
// preserving emission order.
func (s *Sink) FlushAll() {
	s.committed = append(s.committed, s.pending...)
	s.pending = nil
}

// HasErrors reports whether any committed diagnostic is an Error.
func (s *Sink) HasErrors() bool {
	for _, d := range s.committed {
		if d.Kind == Error {
			return true
		}
	}
	return false
}

// Committed returns the committed diagnostics in source order.
func (s *Sink) Committed() []Diagnostic { return s.committed }

// PrintExitClear flushes all pending diagnostics, renders every committed
// diagnostic (skipping warnings unless SetPrintWarnings(true) was called),
// and reports whether an error was committed. It does not terminate the
// process itself; the CLI entry point decides whether to os.Exit, keeping
// the sink usable from tests.
func (s *Sink) PrintExitClear() (hadError bool) {
	s.FlushAll()
	for _, d := range s.committed {
		if d.Kind == Warning && !s.printWarnings {
			continue
		}
		s.render(d)
	}
	hadError = s.HasErrors()
	s.committed = nil
	return hadError
}

func (s *Sink) render(d Diagnostic) {
	path := "<unknown>"
	if d.Span.Source != nil {
		path = d.Span.Source.DisplayPath()
	}
	fmt.Fprintf(s.writer, "%s: %s:%d:%d: %s\n", d.Kind, path, d.Span.Line, d.Span.Col, d.Message)

	if d.Span.Source == nil {
		return
	}
	rawLine := d.Span.Source.Line(d.Span.Line)
	renderedLine, col := expandTabs(rawLine, d.Span.Col)

	colorOn, colorOff := "", ""
	if s.color {
		if d.Kind == Error {
			colorOn = "\033[1;31m"
		} else {
			colorOn = "\033[1;33m"
		}
		colorOff = "\033[0m"
	}

	fmt.Fprintln(s.writer, renderedLine)
	caretCol := col - 1
	if caretCol < 0 {
		caretCol = 0
	}
	fmt.Fprintf(s.writer, "%s%s%s%s\n", strings.Repeat(" ", caretCol), colorOn, strings.Repeat("^", max(d.Span.Len, 1)), colorOff)
}

// expandTabs replaces each tab in line with a single space (spec §4.1:
// "tabs replaced by single spaces") and recomputes col to match: the
// lexer counts a tab as 4 columns (spec §4.2), but the rendered line
// counts it as 1, so col must be walked down proportionally.
func expandTabs(line string, col int) (string, int) {
	if !strings.Contains(line, "\t") {
		return line, col
	}
	var b strings.Builder
	b.Grow(len(line))
	sourceCol := 1
	renderedCol := 1
	found := false
	for _, r := range line {
		if sourceCol >= col && !found {
			renderedCol = b.Len() + 1
			found = true
		}
		if r == '\t' {
			b.WriteByte(' ')
			sourceCol += 4
		} else {
			b.WriteRune(r)
			sourceCol++
		}
	}
	if !found {
		renderedCol = b.Len() + 1 + (col - sourceCol)
		if renderedCol < 1 {
			renderedCol = 1
		}
	}
	return b.String(), renderedCol
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
