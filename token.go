package scarpet

import (
	"fmt"
	"math/big"
	"unicode/utf16"
)

// TokenKind classifies a scanned unit of source.
type TokenKind int

const (
	String TokenKind = iota
	Number
	HexNumber
	Function
	Constant
	Variable
	Comment
	Spread
	NewLineMarker
	Semicolon
	Comma
	Colon
	Tilde
	Not
	NotEquals
	Div
	Add
	AddAssign
	Sub
	Arrow
	SwapAssign
	LtEq
	Lt
	GtEq
	Gt
	Equals
	Assign
	Pow
	Mul
	Mod
	And
	Or
	OpenParen
	CloseParen
	OpenBrack
	CloseBrack
	OpenBrace
	CloseBrace
)

var tokenNames = [...]string{
	String:        "String",
	Number:        "Number",
	HexNumber:     "HexNumber",
	Function:      "Function",
	Constant:      "Constant",
	Variable:      "Variable",
	Comment:       "Comment",
	Spread:        "Spread",
	NewLineMarker: "NewLineMarker",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Colon:         "Colon",
	Tilde:         "Tilde",
	Not:           "Not",
	NotEquals:     "NotEquals",
	Div:           "Div",
	Add:           "Add",
	AddAssign:     "AddAssign",
	Sub:           "Sub",
	Arrow:         "Arrow",
	SwapAssign:    "SwapAssign",
	LtEq:          "LtEq",
	Lt:            "Lt",
	GtEq:          "GtEq",
	Gt:            "Gt",
	Equals:        "Equals",
	Assign:        "Assign",
	Pow:           "Pow",
	Mul:           "Mul",
	Mod:           "Mod",
	And:           "And",
	Or:            "Or",
	OpenParen:     "OpenParen",
	CloseParen:    "CloseParen",
	OpenBrack:     "OpenBrack",
	CloseBrack:    "CloseBrack",
	OpenBrace:     "OpenBrace",
	CloseBrace:    "CloseBrace",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified, located unit of source. Value is the decoded
// literal payload: *big.Int for Number/HexNumber, float64 for fractional
// Number, string for String, nil otherwise. Value is nil with HasError set
// exactly when the literal was unrecoverable (unterminated string, missing
// hex digit, non-ASCII digit).
type Token struct {
	Kind     TokenKind
	Start    Position
	End      Position
	Value    any
	HasError bool
}

// Lexeme extracts the token's raw text from the code-unit buffer the
// tokenizer scanned.
func (t Token) Lexeme(src []uint16) string {
	if t.Start.Offset < 0 || t.End.Offset > len(src) || t.Start.Offset > t.End.Offset {
		return ""
	}
	return string(utf16.Decode(src[t.Start.Offset:t.End.Offset]))
}

// Range returns the token's source range.
func (t Token) Range() Range {
	return Range{Start: t.Start, End: t.End}
}

// Int returns the arbitrary-precision integer payload, if any.
func (t Token) Int() (*big.Int, bool) {
	v, ok := t.Value.(*big.Int)
	return v, ok
}

// Float returns the floating-point payload, if any.
func (t Token) Float() (float64, bool) {
	v, ok := t.Value.(float64)
	return v, ok
}

// Text returns the decoded string payload, if any.
func (t Token) Text() (string, bool) {
	v, ok := t.Value.(string)
	return v, ok
}
