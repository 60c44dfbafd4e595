// errors.go: user-facing rendering of scan diagnostics.
//
// Turns tokenizer diagnostics into readable snippets with a caret pointing
// at the offending column:
//
//	error in spawn.sc at 3:12: unknown escape sequence
//
//	   2 | msg = 'hi\k';
//	   3 | run(msg)
//	     |            ^
//	   4 | ...
//
// The snippet shows up to one line of context before and after, numbers the
// lines, and places the caret under the diagnostic's start column. Output
// is plain text; callers that want color style it themselves.
package scarpet

import (
	"fmt"
	"strings"
)

// RenderDiagnostic formats one diagnostic against the source it was
// produced from. name labels the source (typically a file name) and may be
// empty. Row/Col are 0-based internally and rendered 1-based; out-of-range
// coordinates are clamped so rendering never fails.
func RenderDiagnostic(src, name string, d Diagnostic) string {
	severity := "error"
	if d.Kind.IsWarning() {
		severity = "warning"
	}

	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	row := d.Range.Start.Row
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	col := d.Range.Start.Col
	if col < 0 {
		col = 0
	}
	if col > len(lines[row]) {
		col = len(lines[row])
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", severity, name, row+1, col+1, d.Kind.Message())
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", severity, row+1, col+1, d.Kind.Message())
	}
	if row > 0 {
		fmt.Fprintf(&b, "%4d | %s\n", row, lines[row-1])
	}
	fmt.Fprintf(&b, "%4d | %s\n", row+1, lines[row])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col))
	if row+1 < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", row+2, lines[row+1])
	}
	return b.String()
}

// WrapDiagnostics summarizes a finished scan as a Go error for callers that
// only deal in errors. Returns nil when the sink holds no error-severity
// diagnostics; warnings alone do not fail a scan.
func WrapDiagnostics(src, name string, sink *Sink) error {
	if sink == nil || !sink.HasErrors() {
		return nil
	}
	var b strings.Builder
	for i, d := range sink.Errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderDiagnostic(src, name, d))
	}
	return fmt.Errorf("%s", b.String())
}
