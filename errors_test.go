// errors_test.go
package scarpet

import (
	"strings"
	"testing"
)

func diagAt(kind DiagnosticKind, row, col int) Diagnostic {
	p := Position{Row: row, Col: col}
	return Diagnostic{Kind: kind, Range: Range{Start: p, End: p}}
}

func Test_RenderDiagnostic_Snippet(t *testing.T) {
	src := "a = 1\nb = 'hi\\k'\nc = 2"
	got := RenderDiagnostic(src, "spawn.sc", diagAt(UnknownEscapeSequence, 1, 7))

	want := strings.Join([]string{
		"error in spawn.sc at 2:8: unknown escape sequence",
		"",
		"   1 | a = 1",
		"   2 | b = 'hi\\k'",
		"     |        ^",
		"   3 | c = 2",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("snippet mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func Test_RenderDiagnostic_FirstAndLastLine(t *testing.T) {
	src := "first\nlast"

	got := RenderDiagnostic(src, "", diagAt(UnknownOperator, 0, 0))
	if strings.Contains(got, "| last\n   1 |") {
		t.Fatalf("no context line should precede the first line:\n%s", got)
	}
	if !strings.HasPrefix(got, "error at 1:1:") {
		t.Fatalf("unnamed source should omit the file label:\n%s", got)
	}

	got = RenderDiagnostic(src, "", diagAt(UnknownOperator, 1, 0))
	if !strings.HasSuffix(got, "     | ^\n") {
		t.Fatalf("no context line should follow the last line:\n%s", got)
	}
}

func Test_RenderDiagnostic_Clamped(t *testing.T) {
	src := "ab"
	got := RenderDiagnostic(src, "x.sc", diagAt(UnexpectedEof, 9, 99))
	if !strings.Contains(got, "at 1:3:") {
		t.Fatalf("out-of-range coordinates should clamp to the source:\n%s", got)
	}
	if !strings.Contains(got, "     |   ^") {
		t.Fatalf("caret should sit one past the last column:\n%s", got)
	}
}

func Test_RenderDiagnostic_WarningSeverity(t *testing.T) {
	got := RenderDiagnostic("9007199254740993", "n.sc", diagAt(LossOfPrecision, 0, 0))
	if !strings.HasPrefix(got, "warning in n.sc") {
		t.Fatalf("loss of precision should render as a warning:\n%s", got)
	}
}

func Test_WrapDiagnostics(t *testing.T) {
	if err := WrapDiagnostics("", "x.sc", nil); err != nil {
		t.Fatalf("nil sink: %v", err)
	}

	var sink Sink
	sink.Add(diagAt(LossOfPrecision, 0, 0))
	if err := WrapDiagnostics("9007199254740993", "x.sc", &sink); err != nil {
		t.Fatalf("warnings alone should not produce an error: %v", err)
	}

	sink.Add(diagAt(UnexpectedEof, 0, 5))
	sink.Add(diagAt(UnknownOperator, 0, 0))
	err := WrapDiagnostics("'oops", "x.sc", &sink)
	if err == nil {
		t.Fatal("errors in the sink should produce a non-nil error")
	}
	if got := strings.Count(err.Error(), "error in x.sc"); got != 2 {
		t.Fatalf("want both diagnostics rendered, got %d headers:\n%s", got, err)
	}
}
