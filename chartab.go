// chartab.go: character classification with host-runtime (JVM) semantics.
//
// The in-game script engine runs on the JVM and classifies characters with
// java.lang.Character, whose notion of whitespace diverges from the Unicode
// White_Space property: the control ranges U+0009..U+000D and U+001C..U+001F
// count as whitespace, while the non-breaking spaces U+00A0, U+2007 and
// U+202F do not, despite their Zs category. Identifier letters are the L*
// categories. Both sides see the source as a sequence of 16-bit code units,
// so every predicate here is defined only for code points <= 0xFFFF; lone
// surrogates match nothing.
//
// These tables must stay referentially stable: classification never depends
// on scan state, so identical input always tokenizes identically.
package scarpet

import "unicode"

// letterTables are the JVM letter categories (Lu, Ll, Lt, Lm, Lo).
var letterTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
}

// isLetter reports whether the code unit is a letter under java.lang.Character
// rules. Surrogate code units are never letters.
func isLetter(c uint16) bool {
	if c >= 0xD800 && c <= 0xDFFF {
		return false
	}
	return unicode.In(rune(c), letterTables...)
}

// isWhitespace reports whether the code unit is whitespace under
// java.lang.Character rules.
func isWhitespace(c uint16) bool {
	switch {
	case c >= 0x09 && c <= 0x0D:
		return true
	case c >= 0x1C && c <= 0x1F:
		return true
	case c == 0xA0 || c == 0x2007 || c == 0x202F:
		// Non-breaking: Zs, but not whitespace to the host runtime.
		return false
	case c == 0x2028 || c == 0x2029:
		// Line and paragraph separators.
		return true
	}
	if c >= 0xD800 && c <= 0xDFFF {
		return false
	}
	return unicode.In(rune(c), unicode.Zs)
}

// isDigit reports whether the code unit is a decimal digit (category Nd).
func isDigit(c uint16) bool {
	if c < 0x80 {
		return c >= '0' && c <= '9'
	}
	if c >= 0xD800 && c <= 0xDFFF {
		return false
	}
	return unicode.In(rune(c), unicode.Nd)
}

// digitValue returns the numeric value of a decimal digit code unit, or -1.
// Each Nd block is a contiguous run of ten code points starting at its zero.
func digitValue(c uint16) int {
	if c < 0x80 {
		if c >= '0' && c <= '9' {
			return int(c - '0')
		}
		return -1
	}
	if !isDigit(c) {
		return -1
	}
	// Nd blocks are contiguous runs of ten; walk back to the run's zero.
	zero := c
	for i := 0; i < 9 && zero > 0 && isDigit(zero-1); i++ {
		zero--
	}
	return int(c - zero)
}

// isHexDigit reports whether the code unit is an ASCII hexadecimal digit.
func isHexDigit(c uint16) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the value of an ASCII hexadecimal digit, or -1.
func hexValue(c uint16) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
