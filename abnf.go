package abnf

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing an extent of input bytes. For every
// terminal the parser captures, a span denotes a start offset and the offset
// just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Numeric terminals ------------------------------------------------

// Radix classifies the base of a numeric terminal: %b… (binary),
// %d… (decimal) or %x… (hexadecimal).
type Radix int8

const (
	RadixNone Radix = iota // no radix, i.e. not a numeric terminal
	RadixBinary
	RadixDecimal
	RadixHexadecimal
)

// Letter returns the radix marker as it appears in grammar source,
// i.e. the letter following '%'.
func (r Radix) Letter() byte {
	switch r {
	case RadixBinary:
		return 'b'
	case RadixDecimal:
		return 'd'
	case RadixHexadecimal:
		return 'x'
	}
	return 0
}

func (r Radix) String() string {
	switch r {
	case RadixBinary:
		return "binary"
	case RadixDecimal:
		return "decimal"
	case RadixHexadecimal:
		return "hexadecimal"
	}
	return "unspecified"
}

// Unbounded is the sentinel upper bound of an open repetition range, as in
// "1*element".
const Unbounded = int(^uint(0) >> 1)

// --- Error codes ------------------------------------------------------

// ErrorCode describes the kinds of errors a parse can produce. A code is
// recorded together with a 1-based line number; see package ast for the
// parse-result type carrying both.
type ErrorCode int

const (
	OK ErrorCode = iota // zero value: no error

	// reported by the advancers
	ErrUnbalancedQuote   // EOF before the closing quote of a "…" literal
	ErrBadQuotedChar     // control character inside a "…" literal
	ErrMaxLengthExceeded // "…" literal longer than the declared maximum
	ErrBadRepeatRange    // repeat bounds malformed, e.g. 3*2

	// reported by the syntax-tree builder
	ErrRuleUndefined      // "=/" for a rule name never defined
	ErrRulenameDuplicated // "=" re-defines an existing rule name

	// reported at the top level
	ErrBadSequence // input is not a sequence of ABNF rules
)

func (e ErrorCode) String() string {
	switch e {
	case OK:
		return "no error"
	case ErrUnbalancedQuote:
		return "unbalanced quote"
	case ErrBadQuotedChar:
		return "bad quoted char"
	case ErrMaxLengthExceeded:
		return "maximum string length exceeded"
	case ErrBadRepeatRange:
		return "bad repeat range"
	case ErrRuleUndefined:
		return "rule undefined"
	case ErrRulenameDuplicated:
		return "rulename duplicated"
	case ErrBadSequence:
		return "bad rule sequence"
	}
	return "unknown parser error"
}
