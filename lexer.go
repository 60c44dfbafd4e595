// lexer.go: the scarpet tokenizer.
//
// The tokenizer turns source text into a pull-based stream of typed tokens.
// It is the canonical "never fails, always returns something" layer: every
// malformed construct records a diagnostic in the caller's Sink and still
// yields a syntactically typed token, so a single pass can surface every
// independent problem in a file. The scan is fully synchronous and single
// pass, O(input length).
//
// The source is scanned as a sequence of 16-bit code units, matching the
// host runtime. Lone surrogates are ordinary code units here; there is no
// supplementary-plane decoding. Character classification comes from
// chartab.go, which mirrors java.lang.Character.
package scarpet

import (
	"math"
	"math/big"
	"unicode/utf16"
)

// Config selects the scanning context. The zero value is not the default:
// use DefaultConfig, which allows comments and rejects new line markers.
type Config struct {
	// AllowComments permits // comments. Single-statement execution
	// contexts (e.g. a command argument) disallow them; the comment is
	// still scanned as a token, with an UnexpectedComment diagnostic.
	AllowComments bool
	// AllowNewLineMarkers permits the '$' line separator used in
	// interactive multi-statement contexts.
	AllowNewLineMarkers bool
}

// DefaultConfig returns the scripting-file configuration.
func DefaultConfig() Config {
	return Config{AllowComments: true, AllowNewLineMarkers: false}
}

// Tokenizer owns the scan cursor over one source text. It is exhausted by
// repeated Next calls and holds no state beyond one scan; a fresh instance
// (with its own Sink) is required per input. Not safe for concurrent use.
type Tokenizer struct {
	src  []uint16
	cfg  Config
	sink *Sink
	pos  Position
}

// NewTokenizer creates a tokenizer over src, decoding it to UTF-16 code
// units. Diagnostics accumulate in sink, which the caller owns; the
// tokenizer never clears it.
func NewTokenizer(src string, cfg Config, sink *Sink) *Tokenizer {
	return NewTokenizerUTF16(utf16.Encode([]rune(src)), cfg, sink)
}

// NewTokenizerUTF16 creates a tokenizer over an already-decoded code unit
// sequence.
func NewTokenizerUTF16(units []uint16, cfg Config, sink *Sink) *Tokenizer {
	if sink == nil {
		sink = &Sink{}
	}
	return &Tokenizer{src: units, cfg: cfg, sink: sink}
}

// Source returns the code unit buffer the tokenizer scans, for lexeme
// extraction with Token.Lexeme.
func (t *Tokenizer) Source() []uint16 { return t.src }

func (t *Tokenizer) atEnd() bool { return t.pos.Offset >= len(t.src) }

func (t *Tokenizer) peek() uint16 {
	if t.atEnd() {
		return 0
	}
	return t.src[t.pos.Offset]
}

func (t *Tokenizer) peekAt(n int) (uint16, bool) {
	idx := t.pos.Offset + n
	if idx >= len(t.src) {
		return 0, false
	}
	return t.src[idx], true
}

// advance consumes one code unit. A line feed moves the cursor to the next
// row and resets the column; everything else advances the column.
func (t *Tokenizer) advance() uint16 {
	c := t.src[t.pos.Offset]
	t.pos.Offset++
	if c == '\n' {
		t.pos.Row++
		t.pos.Col = 0
	} else {
		t.pos.Col++
	}
	return c
}

func (t *Tokenizer) token(kind TokenKind, start Position, value any, hasError bool) Token {
	return Token{Kind: kind, Start: start, End: t.pos, Value: value, HasError: hasError}
}

func (t *Tokenizer) diag(kind DiagnosticKind, start, end Position) {
	t.sink.Add(Diagnostic{Kind: kind, Range: Range{Start: start, End: end}})
}

func (t *Tokenizer) skipWhitespace() {
	for !t.atEnd() && isWhitespace(t.peek()) {
		t.advance()
	}
}

// Next returns the next token. ok is false once the input is exhausted;
// after that every call keeps returning ok=false.
func (t *Tokenizer) Next() (tok Token, ok bool) {
	for {
		t.skipWhitespace()
		if t.atEnd() {
			return Token{}, false
		}
		start := t.pos
		c := t.peek()

		switch {
		case c == '\'':
			return t.readString(start), true
		case isDigit(c):
			return t.readNumber(start), true
		case c == '_' || isLetter(c):
			return t.readIdentifier(start), true
		}

		switch c {
		case ';':
			return t.single(Semicolon, start), true
		case ',':
			return t.single(Comma, start), true
		case ':':
			return t.single(Colon, start), true
		case '~':
			return t.single(Tilde, start), true
		case '(':
			return t.single(OpenParen, start), true
		case ')':
			return t.single(CloseParen, start), true
		case '[':
			return t.single(OpenBrack, start), true
		case ']':
			return t.single(CloseBrack, start), true
		case '{':
			return t.single(OpenBrace, start), true
		case '}':
			return t.single(CloseBrace, start), true
		case '*':
			return t.single(Mul, start), true
		case '%':
			return t.single(Mod, start), true
		case '^':
			return t.single(Pow, start), true
		case '!':
			return t.oneOrTwo(Not, '=', NotEquals, start), true
		case '=':
			return t.oneOrTwo(Assign, '=', Equals, start), true
		case '>':
			return t.oneOrTwo(Gt, '=', GtEq, start), true
		case '+':
			return t.oneOrTwo(Add, '=', AddAssign, start), true
		case '-':
			return t.oneOrTwo(Sub, '>', Arrow, start), true
		case '<':
			t.advance()
			switch t.peek() {
			case '=':
				t.advance()
				return t.token(LtEq, start, nil, false), true
			case '>':
				t.advance()
				return t.token(SwapAssign, start, nil, false), true
			}
			return t.token(Lt, start, nil, false), true
		case '&':
			return t.readBoolOp(And, '&', start), true
		case '|':
			return t.readBoolOp(Or, '|', start), true
		case '/':
			t.advance()
			if t.peek() == '/' {
				tok := t.readComment(start)
				if !t.cfg.AllowComments {
					t.diag(UnexpectedComment, tok.Start, tok.End)
				}
				return tok, true
			}
			return t.token(Div, start, nil, false), true
		case '.':
			return t.readSpread(start), true
		case '$':
			t.advance()
			if !t.cfg.AllowNewLineMarkers {
				t.diag(UnexpectedNewLineMarker, start, t.pos)
			}
			return t.token(NewLineMarker, start, nil, false), true
		}

		// Unrecognized code point: record it, step over it and resume.
		// The cursor strictly advances, so the scan always terminates.
		t.advance()
		t.diag(UnexpectedToken, start, t.pos)
	}
}

// Scan drains the tokenizer into a slice.
func (t *Tokenizer) Scan() []Token {
	var tokens []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (t *Tokenizer) single(kind TokenKind, start Position) Token {
	t.advance()
	return t.token(kind, start, nil, false)
}

// oneOrTwo resolves operators whose two-character form requires an exact
// second character, falling back to the one-character form.
func (t *Tokenizer) oneOrTwo(oneKind TokenKind, second uint16, twoKind TokenKind, start Position) Token {
	t.advance()
	if !t.atEnd() && t.peek() == second {
		t.advance()
		return t.token(twoKind, start, nil, false)
	}
	return t.token(oneKind, start, nil, false)
}

// readBoolOp scans && or ||. A mismatched second character is consumed
// anyway and reported, but the operator token is still emitted.
func (t *Tokenizer) readBoolOp(kind TokenKind, second uint16, start Position) Token {
	t.advance()
	if t.atEnd() {
		t.diag(UnknownOperator, start, t.pos)
		return t.token(kind, start, nil, false)
	}
	if c := t.advance(); c != second {
		t.diag(UnknownOperator, start, t.pos)
	}
	return t.token(kind, start, nil, false)
}

// readSpread scans the ... operator, which must be exactly three dots.
// Anything shorter still yields a Spread token covering what was consumed,
// with an UnknownOperator diagnostic.
func (t *Tokenizer) readSpread(start Position) Token {
	dots := 0
	for dots < 3 && !t.atEnd() && t.peek() == '.' {
		t.advance()
		dots++
	}
	if dots != 3 {
		t.diag(UnknownOperator, start, t.pos)
	}
	return t.token(Spread, start, nil, false)
}

// readComment scans a // comment through end of line, coalescing a run of
// lines that each start with // into a single token. The newline after the
// last comment line is left for the whitespace skipper.
func (t *Tokenizer) readComment(start Position) Token {
	for {
		for !t.atEnd() && t.peek() != '\n' {
			t.advance()
		}
		if t.atEnd() {
			break
		}
		c1, ok1 := t.peekAt(1)
		c2, ok2 := t.peekAt(2)
		if !ok1 || !ok2 || c1 != '/' || c2 != '/' {
			break
		}
		t.advance() // the newline joining the comment lines
	}
	return t.token(Comment, start, nil, false)
}

// readString scans a '-delimited string literal. Raw newlines are allowed
// inside and tracked like any other newline. Reaching end of input before
// the closing quote yields an error-flagged token with no value.
func (t *Tokenizer) readString(start Position) Token {
	t.advance() // opening quote
	var units []uint16
	for {
		if t.atEnd() {
			t.diag(UnexpectedEof, start, t.pos)
			return t.token(String, start, nil, true)
		}
		escStart := t.pos
		c := t.advance()
		if c == '\'' {
			break
		}
		if c != '\\' {
			units = append(units, c)
			continue
		}
		if t.atEnd() {
			// Lone trailing backslash; the next iteration reports EOF.
			continue
		}
		switch e := t.advance(); e {
		case 'n':
			units = append(units, '\n')
		case 't':
			units = append(units, '\t')
		case '\'':
			units = append(units, '\'')
		case '\\':
			units = append(units, '\\')
		default:
			// Drop the backslash, keep the character literally.
			t.diag(UnknownEscapeSequence, escStart, t.pos)
			units = append(units, e)
		}
	}
	return t.token(String, start, string(utf16.Decode(units)), false)
}

// readIdentifier scans an identifier and classifies it: an immediately
// following '(' (whitespace allowed in between) makes it a Function,
// membership in the reserved-constant set a Constant, otherwise Variable.
func (t *Tokenizer) readIdentifier(start Position) Token {
	for !t.atEnd() {
		c := t.peek()
		if c == '_' || isLetter(c) || isDigit(c) {
			t.advance()
			continue
		}
		break
	}
	end := t.pos
	name := string(utf16.Decode(t.src[start.Offset:end.Offset]))

	// Lookahead for a call; the whitespace is consumed but not part of
	// the token.
	t.skipWhitespace()
	kind := Variable
	switch {
	case !t.atEnd() && t.peek() == '(':
		kind = Function
	case IsReservedConstant(name):
		kind = Constant
	}
	return Token{Kind: kind, Start: start, End: end, Value: name}
}

// maxSafeInteger is the largest integer magnitude float64 represents
// exactly as consecutive integers.
var maxSafeInteger = big.NewInt(1<<53 - 1)

var (
	bigTen     = big.NewInt(10)
	bigSixteen = big.NewInt(16)
)

// intToFloat converts the integer accumulator for fractional composition,
// warning when the conversion cannot be exact.
func (t *Tokenizer) intToFloat(acc *big.Int, start Position) float64 {
	if acc.CmpAbs(maxSafeInteger) > 0 {
		t.diag(LossOfPrecision, start, start)
	}
	f, _ := new(big.Float).SetInt(acc).Float64()
	return f
}

// readNumber scans an integer, fractional or exponential literal with exact
// numeric semantics: integer digits accumulate into an arbitrary-precision
// integer, fractional digits into a float via a growing power-of-ten scale,
// and an exponent applies as a power of ten. When no fractional part was
// seen the exponent is a big-integer multiplication, so 2e3 stays an exact
// integer.
func (t *Tokenizer) readNumber(start Position) Token {
	if t.peek() == '0' {
		if c, ok := t.peekAt(1); ok && (c == 'x' || c == 'X') {
			return t.readHexNumber(start)
		}
	}

	intAcc := new(big.Int)
	var floatAcc, scale float64
	exponent := 0
	negExponent := false
	sawFraction := false
	sawExponent := false
	inExponent := false
	hasError := false

scan:
	for !t.atEnd() {
		c := t.peek()
		switch {
		case isDigit(c):
			if c > 127 {
				// Non-ASCII digits are classified but unsupported;
				// keep consuming the literal run.
				digitStart := t.pos
				t.advance()
				t.diag(UnicodeDigit, digitStart, t.pos)
				hasError = true
				continue
			}
			d := int64(c - '0')
			t.advance()
			switch {
			case inExponent:
				exponent = exponent*10 + int(d)
			case sawFraction:
				floatAcc += float64(d) / scale
				scale *= 10
			default:
				intAcc.Mul(intAcc, bigTen)
				intAcc.Add(intAcc, big.NewInt(d))
			}
		case c == '.' && !sawFraction && !inExponent:
			t.advance()
			floatAcc = t.intToFloat(intAcc, start)
			scale = 10
			sawFraction = true
		case (c == 'e' || c == 'E') && !inExponent:
			t.advance()
			inExponent = true
			sawExponent = true
			switch t.peek() {
			case '-':
				t.advance()
				negExponent = true
				if !sawFraction {
					floatAcc = t.intToFloat(intAcc, start)
					scale = 10
					sawFraction = true
				}
			case '+':
				t.advance()
			}
		default:
			break scan
		}
	}

	if hasError {
		return t.token(Number, start, nil, true)
	}

	var value any
	switch {
	case sawExponent && sawFraction:
		exp := float64(exponent)
		if negExponent {
			exp = -exp
		}
		value = floatAcc * math.Pow(10, exp)
	case sawExponent:
		pow := new(big.Int).Exp(bigTen, big.NewInt(int64(exponent)), nil)
		value = intAcc.Mul(intAcc, pow)
	case sawFraction:
		value = floatAcc
	default:
		value = intAcc
	}
	return t.token(Number, start, value, false)
}

// readHexNumber scans a 0x literal into an arbitrary-precision integer.
func (t *Tokenizer) readHexNumber(start Position) Token {
	t.advance() // 0
	t.advance() // x
	if t.atEnd() || !isHexDigit(t.peek()) {
		t.diag(ExpectedHexDigit, start, t.pos)
		return t.token(HexNumber, start, nil, true)
	}
	acc := new(big.Int)
	for !t.atEnd() && isHexDigit(t.peek()) {
		v := hexValue(t.advance())
		acc.Mul(acc, bigSixteen)
		acc.Add(acc, big.NewInt(int64(v)))
	}
	return t.token(HexNumber, start, acc, false)
}
