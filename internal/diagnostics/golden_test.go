package diagnostics

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestRenderedDiagnosticsSnapshot locks down the exact text the
// reporter emits for a representative spread of codes and locations,
// the way the teacher pins interpreter output with go-snaps.
func TestRenderedDiagnosticsSnapshot(t *testing.T) {
	source := "int x = \"hi\";\ndouble d = 1.0;\nfloat f = d;\n"
	var buf bytes.Buffer
	r := New(&buf, source, false)

	r.Report(TypeMismatchStringToInt, &Location{File: "main.em", Line: 1, Column: 9, ColumnEnd: 13}, "")
	r.Report(TypeMismatchDoubleToFloat, &Location{File: "main.em", Line: 3, Column: 11, ColumnEnd: 12}, "")
	r.Report(UndefinedVariable, &Location{File: "main.em", Line: 3, Column: 11, ColumnEnd: 12}, "z")

	snaps.MatchSnapshot(t, buf.String())
}

func TestRenderedDiagnosticWithColorSnapshot(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "int x = \"hi\";", true)
	r.Report(TypeMismatchStringToInt, &Location{File: "main.em", Line: 1, Column: 9, ColumnEnd: 13}, "")

	snaps.MatchSnapshot(t, buf.String())
}
