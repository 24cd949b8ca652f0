package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strconv"

	"github.com/npillmayer/abnf"
	"github.com/npillmayer/abnf/chars"
)

// AdvanceProse consumes a prose description:
//
//    prose-val = "<" *(%x20-3D / %x3F-7E) ">"
//
// i.e. a bracketed string of SP and VCHAR without angles. The context
// receives the inner text, brackets excluded.
func AdvanceProse(c *abnf.Cursor, ctx Context) bool {
	save := *c
	if c.AtEnd() || c.Peek() != '<' {
		return false
	}
	c.Next()
	start := c.Pos()
	for !c.AtEnd() && chars.IsProseValue(c.Peek()) {
		c.Next()
	}
	if c.AtEnd() || c.Peek() != '>' {
		*c = save
		return false
	}
	text := c.Text(c.SpanFrom(start))
	c.Next()
	if !ctxOf(ctx).Prose(text) {
		*c = save
		return false
	}
	return true
}

// AdvanceNumber consumes a numeric terminal:
//
//    num-val = "%" (bin-val / dec-val / hex-val)
//    bin-val = "b" 1*BIT [ 1*("." 1*BIT) / ("-" 1*BIT) ]
//    dec-val = "d" 1*DIGIT [ 1*("." 1*DIGIT) / ("-" 1*DIGIT) ]
//    hex-val = "x" 1*HEXDIG [ 1*("." 1*HEXDIG) / ("-" 1*HEXDIG) ]
//
// Digits are reported verbatim, not converted, since ranges and sequences
// may want re-display in their original radix. The context receives
// FirstNumber for the initial digit run, NextNumber for every further item
// of a "." sequence, and LastNumber either with the upper bound of a "-"
// range or with an empty slice to close a sequence. A single literal gets
// FirstNumber only.
func AdvanceNumber(c *abnf.Cursor, ctx Context) bool {
	save := *c
	cx := ctxOf(ctx)
	if c.AtEnd() || c.Peek() != '%' {
		return false
	}
	c.Next()
	if c.AtEnd() {
		*c = save
		return false
	}
	var radix abnf.Radix
	var run func(*abnf.Cursor) bool
	var isDigit func(byte) bool
	switch c.Peek() {
	case 'x':
		radix, run, isDigit = abnf.RadixHexadecimal, chars.AdvanceHexDigits, chars.IsHexDigit
	case 'd':
		radix, run, isDigit = abnf.RadixDecimal, chars.AdvanceDigits, chars.IsDigit
	case 'b':
		radix, run, isDigit = abnf.RadixBinary, chars.AdvanceBits, chars.IsBit
	default:
		*c = save
		return false
	}
	c.Next()
	start := c.Pos()
	if !run(c) {
		*c = save
		return false
	}
	if !cx.FirstNumber(radix, c.Text(c.SpanFrom(start))) {
		*c = save
		return false
	}
	if !c.AtEnd() && c.Peek() == '-' {
		c.Next()
		if c.AtEnd() || !isDigit(c.Peek()) {
			*c = save
			return false
		}
		start = c.Pos()
		run(c)
		if !cx.LastNumber(radix, c.Text(c.SpanFrom(start))) {
			*c = save
			return false
		}
	} else if !c.AtEnd() && c.Peek() == '.' {
		for !c.AtEnd() && c.Peek() == '.' {
			c.Next()
			if c.AtEnd() || !isDigit(c.Peek()) {
				*c = save
				return false
			}
			start = c.Pos()
			run(c)
			if !cx.NextNumber(radix, c.Text(c.SpanFrom(start))) {
				*c = save
				return false
			}
		}
		// no more elements: close the sequence
		if !cx.LastNumber(radix, nil) {
			*c = save
			return false
		}
	}
	return true
}

// AdvanceQuotedString consumes a quoted character literal:
//
//    char-val = DQUOTE *(%x20-21 / %x23-7E) DQUOTE
//
// The context receives the inner text, quotes excluded. Reaching EOF before
// the closing quote reports ErrUnbalancedQuote, a character outside SP/VCHAR
// reports ErrBadQuotedChar, and an inner text longer than the context's
// declared maximum reports ErrMaxLengthExceeded.
func AdvanceQuotedString(c *abnf.Cursor, ctx Context) bool {
	save := *c
	cx := ctxOf(ctx)
	if c.AtEnd() || !chars.IsDQuote(c.Peek()) {
		return false
	}
	c.Next()
	start := c.Pos()
	max := cx.MaxQuotedStringLength()
	for {
		if c.AtEnd() {
			cx.Error(abnf.ErrUnbalancedQuote, c.Lineno())
			*c = save
			return false
		}
		ch := c.Peek()
		if chars.IsDQuote(ch) {
			break
		}
		if !chars.IsSpace(ch) && !chars.IsVisible(ch) {
			cx.Error(abnf.ErrBadQuotedChar, c.Lineno())
			*c = save
			return false
		}
		if max > 0 && c.Pos()-start+1 > max {
			cx.Error(abnf.ErrMaxLengthExceeded, c.Lineno())
			*c = save
			return false
		}
		c.Next()
	}
	text := c.Text(c.SpanFrom(start))
	c.Next() // closing quote
	if !cx.QuotedString(text) {
		*c = save
		return false
	}
	return true
}

// AdvanceRepeat consumes a repetition prefix:
//
//    repeat = 1*DIGIT / (*DIGIT "*" *DIGIT)
//
// A missing lower bound defaults to 0, a missing upper bound to
// abnf.Unbounded, and an exact count sets both bounds. An explicit range
// with lower > upper, or a bound too large for int, reports
// ErrBadRepeatRange.
func AdvanceRepeat(c *abnf.Cursor, ctx Context) bool {
	save := *c
	cx := ctxOf(ctx)
	start := c.Pos()
	chars.AdvanceDigits(c)
	first := c.Text(c.SpanFrom(start))
	lower, upper := 0, 0
	if !c.AtEnd() && c.Peek() == '*' {
		c.Next()
		start = c.Pos()
		chars.AdvanceDigits(c)
		second := c.Text(c.SpanFrom(start))
		upper = abnf.Unbounded
		var err error
		if len(first) > 0 {
			if lower, err = strconv.Atoi(string(first)); err != nil {
				cx.Error(abnf.ErrBadRepeatRange, c.Lineno())
				*c = save
				return false
			}
		}
		if len(second) > 0 {
			if upper, err = strconv.Atoi(string(second)); err != nil {
				cx.Error(abnf.ErrBadRepeatRange, c.Lineno())
				*c = save
				return false
			}
		}
	} else {
		if len(first) == 0 {
			*c = save
			return false
		}
		n, err := strconv.Atoi(string(first))
		if err != nil {
			cx.Error(abnf.ErrBadRepeatRange, c.Lineno())
			*c = save
			return false
		}
		lower, upper = n, n
	}
	if lower > upper {
		cx.Error(abnf.ErrBadRepeatRange, c.Lineno())
		*c = save
		return false
	}
	if !cx.Repeat(lower, upper) {
		*c = save
		return false
	}
	return true
}

// AdvanceComment consumes a comment:
//
//    comment = ";" *(WSP / VCHAR) CRLF
//
// relaxed in two ways: any character except CR and LF is tolerated in the
// comment body, and the terminating newline is optional (and may be CRLF,
// LF or CR). The context receives the body, semicolon and newline excluded.
func AdvanceComment(c *abnf.Cursor, ctx Context) bool {
	save := *c
	if c.AtEnd() || c.Peek() != ';' {
		return false
	}
	c.Next()
	start := c.Pos()
	for !c.AtEnd() && !chars.IsCR(c.Peek()) && !chars.IsLF(c.Peek()) {
		c.Next()
	}
	text := c.Text(c.SpanFrom(start))
	chars.AdvanceNewline(c)
	if !ctxOf(ctx).Comment(text) {
		*c = save
		return false
	}
	return true
}

// AdvanceRulename consumes a rule name:
//
//    rulename = ALPHA *(ALPHA / DIGIT / "-")
func AdvanceRulename(c *abnf.Cursor, ctx Context) bool {
	save := *c
	if c.AtEnd() || !chars.IsAlpha(c.Peek()) {
		return false
	}
	start := c.Pos()
	c.Next()
	for !c.AtEnd() {
		ch := c.Peek()
		if !chars.IsAlpha(ch) && !chars.IsDigit(ch) && ch != '-' {
			break
		}
		c.Next()
	}
	if !ctxOf(ctx).Rulename(c.Text(c.SpanFrom(start))) {
		*c = save
		return false
	}
	return true
}
