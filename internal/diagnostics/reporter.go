package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emberlang/emberc/pkg/token"
)

// Location pins a diagnostic to a point in a named source file.
type Location struct {
	File      string
	Line      int
	Column    int
	ColumnEnd int
}

// Diagnostic is one reported occurrence of a registry Entry.
type Diagnostic struct {
	Code     Code
	Entry    Entry
	Location *Location
	Extra    string
}

// Reporter accumulates diagnostics for one checker run. It is created
// fresh per run rather than shared process-wide state, so tests never
// need a resetCounters call between cases — just a new Reporter.
type Reporter struct {
	Out    io.Writer
	Source string
	Color  bool

	// Exit is invoked when a Fatal diagnostic is reported, instead of
	// calling os.Exit directly, so tests can substitute a function that
	// records the code rather than killing the test binary. Defaults to
	// os.Exit in New.
	Exit func(code int)

	// RunID identifies the CLI invocation this reporter belongs to. The
	// reporter stores it but never prints it: the run ID appears in the
	// CLI's own --verbose lines, not in rendered diagnostics.
	RunID string

	// MaxErrors, when positive, stops rendering diagnostics once this
	// many Error/Fatal diagnostics have been recorded — every
	// diagnostic is still counted and kept in Diagnostics(), only the
	// rendered text is suppressed. Zero (the default) means unlimited.
	MaxErrors int

	warnings int
	errors   int
	fatals   int

	diagnostics []Diagnostic
}

// New returns a Reporter that writes to out and renders source
// snippets from source (pass "" if no snippet rendering is needed,
// e.g. when consuming an AST with no accompanying text).
func New(out io.Writer, source string, color bool) *Reporter {
	return &Reporter{
		Out:    out,
		Source: source,
		Color:  color,
		Exit:   os.Exit,
	}
}

// Reset clears every counter and recorded diagnostic, for reuse across
// test cases without constructing a new Reporter.
func (r *Reporter) Reset() {
	r.warnings, r.errors, r.fatals = 0, 0, 0
	r.diagnostics = nil
}

// Warnings, Errors, and Fatals return the running per-severity counts.
func (r *Reporter) Warnings() int { return r.warnings }
func (r *Reporter) Errors() int   { return r.errors }
func (r *Reporter) Fatals() int   { return r.fatals }

// HasErrors reports whether any Error or Fatal diagnostic was recorded.
func (r *Reporter) HasErrors() bool { return r.errors > 0 || r.fatals > 0 }

// HasFatalErrors reports whether any Fatal diagnostic was recorded.
func (r *Reporter) HasFatalErrors() bool { return r.fatals > 0 }

// Diagnostics returns every diagnostic reported so far, in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Report renders one diagnostic for code at an optional location with
// optional extra context, per the five-step reporter contract: bump
// the severity counter, emit the header, emit the location/snippet,
// emit help/note/suggestion trailers, and — for Fatal — terminate via
// r.Exit after a closing line.
func (r *Reporter) Report(code Code, loc *Location, extra string) {
	entry := Lookup(code)
	d := Diagnostic{Code: code, Entry: entry, Location: loc, Extra: extra}
	r.diagnostics = append(r.diagnostics, d)

	switch entry.Severity {
	case Warning:
		r.warnings++
	case Error:
		r.errors++
	case Fatal:
		r.fatals++
	}

	cutoff := r.MaxErrors > 0 && r.errors+r.fatals > r.MaxErrors

	if r.Out != nil && !cutoff {
		fmt.Fprint(r.Out, r.render(d))
	}

	if entry.Severity == Fatal {
		if r.Out != nil {
			fmt.Fprintf(r.Out, "%scould not compile%s\n", r.bold(), r.reset())
		}
		if r.Exit != nil {
			r.Exit(int(code))
		}
	}
}

func (r *Reporter) render(d Diagnostic) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s[E%04d]: %s", d.Entry.Severity, int(d.Code), d.Entry.Title)
	if d.Extra != "" {
		header += fmt.Sprintf(" (%s)", d.Extra)
	}
	sb.WriteString(r.colorForSeverity(d.Entry.Severity))
	sb.WriteString(header)
	sb.WriteString(r.reset())
	sb.WriteString("\n")

	if d.Location != nil {
		loc := d.Location
		sb.WriteString(fmt.Sprintf("  --> %s:%d:%d\n", loc.File, loc.Line, loc.Column))
		if snippet := r.sourceLine(loc.Line); snippet != "" {
			lineNumStr := fmt.Sprintf("%4d | ", loc.Line)
			sb.WriteString(lineNumStr)
			sb.WriteString(snippet)
			sb.WriteString("\n")

			caretLen := loc.ColumnEnd - loc.Column
			if caretLen < 1 {
				caretLen = 1
			}
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
			sb.WriteString(strings.Repeat(" ", loc.Column-1))
			sb.WriteString(r.colorForSeverity(d.Entry.Severity))
			sb.WriteString(strings.Repeat("^", caretLen))
			sb.WriteString(r.reset())
			sb.WriteString("\n")
		}
	}

	if d.Entry.Hint != "" {
		sb.WriteString(fmt.Sprintf("  help: %s\n", d.Entry.Hint))
	}
	if d.Entry.Explanation != "" {
		sb.WriteString(fmt.Sprintf("  note: %s\n", d.Entry.Explanation))
	}
	if d.Entry.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  suggestion: %s\n", d.Entry.Suggestion))
	}

	return sb.String()
}

func (r *Reporter) sourceLine(line int) string {
	if r.Source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(r.Source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func (r *Reporter) colorForSeverity(s Severity) string {
	if !r.Color {
		return ""
	}
	switch s {
	case Warning:
		return "\033[1;33m"
	case Error:
		return "\033[1;31m"
	case Fatal:
		return "\033[1;35m"
	}
	return ""
}

func (r *Reporter) bold() string {
	if !r.Color {
		return ""
	}
	return "\033[1m"
}

func (r *Reporter) reset() string {
	if !r.Color {
		return ""
	}
	return "\033[0m"
}

// LocationFromPos builds a Location from a token.Position and file
// name. length is the offending token's span length in columns (the
// caret underline width); callers pass 1 when no real span is
// available so the underline still covers at least one column.
func LocationFromPos(file string, pos token.Position, length int) *Location {
	if length < 1 {
		length = 1
	}
	return &Location{File: file, Line: pos.Line, Column: pos.Column, ColumnEnd: pos.Column + length}
}
