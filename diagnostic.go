package scarpet

// DiagnosticKind identifies a scanning problem. Every kind is non-fatal: the
// tokenizer records the diagnostic and keeps going.
type DiagnosticKind int

const (
	ExpectedHexDigit DiagnosticKind = iota
	UnicodeDigit
	LossOfPrecision
	UnexpectedEof
	UnknownEscapeSequence
	UnexpectedComment
	UnexpectedNewLineMarker
	UnknownOperator
	UnexpectedToken
)

var diagnosticNames = [...]string{
	ExpectedHexDigit:        "ExpectedHexDigit",
	UnicodeDigit:            "UnicodeDigit",
	LossOfPrecision:         "LossOfPrecision",
	UnexpectedEof:           "UnexpectedEof",
	UnknownEscapeSequence:   "UnknownEscapeSequence",
	UnexpectedComment:       "UnexpectedComment",
	UnexpectedNewLineMarker: "UnexpectedNewLineMarker",
	UnknownOperator:         "UnknownOperator",
	UnexpectedToken:         "UnexpectedToken",
}

func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticNames) {
		return diagnosticNames[k]
	}
	return "Unknown"
}

// Message returns the human-readable description used when rendering.
func (k DiagnosticKind) Message() string {
	switch k {
	case ExpectedHexDigit:
		return "expected a hexadecimal digit"
	case UnicodeDigit:
		return "non-ASCII digits are not supported in number literals"
	case LossOfPrecision:
		return "number literal cannot be represented exactly"
	case UnexpectedEof:
		return "unexpected end of input"
	case UnknownEscapeSequence:
		return "unknown escape sequence"
	case UnexpectedComment:
		return "comments are not allowed here"
	case UnexpectedNewLineMarker:
		return "new line markers are not allowed here"
	case UnknownOperator:
		return "unknown operator"
	case UnexpectedToken:
		return "unexpected character"
	}
	return "unknown problem"
}

// IsWarning reports whether the kind goes to the sink's warning partition.
// LossOfPrecision still yields a usable value; everything else marks input
// the downstream parser cannot trust.
func (k DiagnosticKind) IsWarning() bool {
	return k == LossOfPrecision
}

// Diagnostic is a located, non-fatal problem report.
type Diagnostic struct {
	Kind  DiagnosticKind
	Range Range
}

// Sink is an ordered, append-only collection of diagnostics, partitioned
// into errors and warnings. It is owned by the caller and shared across one
// tokenizing session; the tokenizer appends and never clears.
type Sink struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Add routes the diagnostic to its partition by kind.
func (s *Sink) Add(d Diagnostic) {
	if d.Kind.IsWarning() {
		s.Warnings = append(s.Warnings, d)
	} else {
		s.Errors = append(s.Errors, d)
	}
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool { return len(s.Errors) > 0 }

// Len returns the total number of recorded diagnostics.
func (s *Sink) Len() int { return len(s.Errors) + len(s.Warnings) }
