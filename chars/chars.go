/*
Package chars implements the ABNF core rules of RFC 5234, Appendix B.1.

Character classes are provided as predicates over single bytes; runs of one
class are consumed by advancer functions operating on an abnf.Cursor. All
advancers obey the commit-on-success contract: they either consume at least
one byte and return true, or leave the cursor untouched and return false.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chars

import "github.com/npillmayer/abnf"

// IsAlpha returns true for ALPHA = %x41-5A / %x61-7A (A-Z / a-z).
func IsAlpha(ch byte) bool {
	return (ch >= 0x41 && ch <= 0x5A) || (ch >= 0x61 && ch <= 0x7A)
}

// IsBit returns true for BIT = "0" / "1".
func IsBit(ch byte) bool {
	return ch == '0' || ch == '1'
}

// IsChar returns true for CHAR = %x01-7F, any 7-bit US-ASCII character
// excluding NUL.
func IsChar(ch byte) bool {
	return ch >= 0x01 && ch <= 0x7F
}

// IsCR returns true for CR = %x0D (carriage return).
func IsCR(ch byte) bool {
	return ch == 0x0D
}

// IsLF returns true for LF = %x0A (linefeed).
func IsLF(ch byte) bool {
	return ch == 0x0A
}

// IsControl returns true for CTL = %x00-1F / %x7F.
func IsControl(ch byte) bool {
	return ch <= 0x1F || ch == 0x7F
}

// IsDigit returns true for DIGIT = %x30-39 (0-9).
func IsDigit(ch byte) bool {
	return ch >= 0x30 && ch <= 0x39
}

// IsHexDigit returns true for HEXDIG = DIGIT / "A"-"F" / "a"-"f".
func IsHexDigit(ch byte) bool {
	return IsDigit(ch) || (ch >= 'A' && ch <= 'F') || (ch >= 'a' && ch <= 'f')
}

// IsDQuote returns true for DQUOTE = %x22.
func IsDQuote(ch byte) bool {
	return ch == 0x22
}

// IsHTab returns true for HTAB = %x09 (horizontal tab).
func IsHTab(ch byte) bool {
	return ch == 0x09
}

// IsOctet returns true for OCTET = %x00-FF. Over bytes this is trivially
// total; it exists for completeness of the core-rule set.
func IsOctet(ch byte) bool {
	return true
}

// IsSpace returns true for SP = %x20.
func IsSpace(ch byte) bool {
	return ch == 0x20
}

// IsVisible returns true for VCHAR = %x21-7E (visible printing characters).
func IsVisible(ch byte) bool {
	return ch >= 0x21 && ch <= 0x7E
}

// IsWhitespace returns true for WSP = SP / HTAB.
func IsWhitespace(ch byte) bool {
	return ch == 0x20 || ch == 0x09
}

// IsProseValue returns true for the characters permitted inside a prose
// description: %x20-3D / %x3F-7E, i.e. SP and VCHAR without '>'.
func IsProseValue(ch byte) bool {
	return (ch >= 0x20 && ch <= 0x3D) || (ch >= 0x3F && ch <= 0x7E)
}

// --- Advancers --------------------------------------------------------

func advanceRun(c *abnf.Cursor, pred func(byte) bool) bool {
	advanced := false
	for !c.AtEnd() && pred(c.Peek()) {
		c.Next()
		advanced = true
	}
	return advanced
}

// AdvanceDigits consumes 1*DIGIT.
func AdvanceDigits(c *abnf.Cursor) bool {
	return advanceRun(c, IsDigit)
}

// AdvanceHexDigits consumes 1*HEXDIG.
func AdvanceHexDigits(c *abnf.Cursor) bool {
	return advanceRun(c, IsHexDigit)
}

// AdvanceBits consumes 1*BIT.
func AdvanceBits(c *abnf.Cursor) bool {
	return advanceRun(c, IsBit)
}

// AdvanceNewline consumes a single line break: CRLF, lone LF, or lone CR,
// in that preference order.
func AdvanceNewline(c *abnf.Cursor) bool {
	if c.AtEnd() {
		return false
	}
	switch {
	case IsCR(c.Peek()):
		c.Next()
		if !c.AtEnd() && IsLF(c.Peek()) {
			c.Next()
		}
	case IsLF(c.Peek()):
		c.Next()
	default:
		return false
	}
	return true
}

// AdvanceInternetNewline consumes CRLF, the Internet standard newline.
// Lone CR or LF is not accepted.
func AdvanceInternetNewline(c *abnf.Cursor) bool {
	save := *c
	if c.AtEnd() || !IsCR(c.Peek()) {
		return false
	}
	c.Next()
	if c.AtEnd() || !IsLF(c.Peek()) {
		*c = save
		return false
	}
	c.Next()
	return true
}

// AdvanceLinearWhitespace consumes linear whitespace: any run of WSP and
// line breaks (CRLF, lone LF or lone CR). Unlike LWSP = *(WSP / CRLF WSP),
// a line break need not be followed by WSP. It returns true iff it
// advanced by at least one position.
func AdvanceLinearWhitespace(c *abnf.Cursor) bool {
	advanced := false
	for !c.AtEnd() {
		if IsWhitespace(c.Peek()) {
			c.Next()
		} else if !AdvanceNewline(c) {
			break
		}
		advanced = true
	}
	return advanced
}
