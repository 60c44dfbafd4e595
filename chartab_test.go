// chartab_test.go
package scarpet

import "testing"

func Test_Chartab_Whitespace_HostRuntimeParity(t *testing.T) {
	in := []uint16{' ', '\t', '\n', '\r', 0x0B, 0x0C, 0x1C, 0x1D, 0x1E, 0x1F, 0x2000, 0x2028, 0x2029, 0x3000}
	for _, c := range in {
		if !isWhitespace(c) {
			t.Errorf("%#x should be whitespace", c)
		}
	}
	// Non-breaking spaces are Zs but not whitespace to the host runtime.
	out := []uint16{0xA0, 0x2007, 0x202F, 'a', '0', 0x00, 0x1B, 0xFFFF}
	for _, c := range out {
		if isWhitespace(c) {
			t.Errorf("%#x should not be whitespace", c)
		}
	}
}

func Test_Chartab_Letters(t *testing.T) {
	for _, c := range []uint16{'a', 'Z', 0xE4 /* ä */, 0x3BB /* λ */, 0x4E16 /* 世 */} {
		if !isLetter(c) {
			t.Errorf("%#x should be a letter", c)
		}
	}
	for _, c := range []uint16{'1', '_', ' ', 0x0662 /* arabic-indic 2 */, 0xD800} {
		if isLetter(c) {
			t.Errorf("%#x should not be a letter", c)
		}
	}
}

func Test_Chartab_Digits(t *testing.T) {
	if !isDigit('7') || digitValue('7') != 7 {
		t.Fatalf("ASCII digit misclassified")
	}
	if !isDigit(0x0662) || digitValue(0x0662) != 2 {
		t.Fatalf("arabic-indic digit misclassified: %d", digitValue(0x0662))
	}
	if !isDigit(0x0966) || digitValue(0x0966) != 0 {
		t.Fatalf("devanagari zero misclassified: %d", digitValue(0x0966))
	}
	if isDigit('a') || digitValue('a') != -1 {
		t.Fatalf("letter classified as digit")
	}
}

func Test_Chartab_HexDigits(t *testing.T) {
	cases := map[uint16]int{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15}
	for c, want := range cases {
		if !isHexDigit(c) || hexValue(c) != want {
			t.Errorf("hex digit %c: want %d, got %d", rune(c), want, hexValue(c))
		}
	}
	for _, c := range []uint16{'g', 'G', ' ', 0x0662} {
		if isHexDigit(c) || hexValue(c) != -1 {
			t.Errorf("%#x should not be a hex digit", c)
		}
	}
}
