package parser

import "github.com/npillmayer/abnf"

// Context is the bundle of callbacks an advancer notifies while it walks the
// input. Structural productions come as begin/end pairs, terminals as single
// calls carrying the captured source bytes. Text slices alias the source
// buffer; a context wanting ownership has to copy.
//
// Every callback returns a success flag. Returning false aborts the calling
// advancer, which then fails like any other mismatch and propagates the
// abort upward. Aggregate advancers call their end callback with ok=false on
// every failure path, so a context can discard partial state; a begin
// callback which itself returned false gets no matching end call.
//
// A nil Context is valid for every advancer and means "validate only".
// NopContext is provided for embedding, so that client contexts implement
// only the calls they care about.
type Context interface {
	BeginDocument() bool
	EndDocument(ok bool) bool

	// terminals
	Prose(text []byte) bool
	QuotedString(text []byte) bool
	Comment(text []byte) bool
	Rulename(name []byte) bool
	FirstNumber(radix abnf.Radix, digits []byte) bool
	NextNumber(radix abnf.Radix, digits []byte) bool
	LastNumber(radix abnf.Radix, digits []byte) bool
	Repeat(lower, upper int) bool

	// structural productions
	BeginGroup() bool
	EndGroup(ok bool) bool
	BeginOption() bool
	EndOption(ok bool) bool
	BeginRepetition() bool
	EndRepetition(ok bool) bool
	BeginConcatenation() bool
	EndConcatenation(ok bool) bool
	BeginAlternation() bool
	EndAlternation(ok bool) bool
	BeginRule(name []byte, incremental bool, line int) bool
	EndRule(name []byte, incremental bool, ok bool) bool

	// Error reports the first error an advancer detects, together with the
	// 1-based line number it occurred on.
	Error(code abnf.ErrorCode, line int)

	// MaxQuotedStringLength declares the maximum permitted length of the
	// inner text of a quoted string. Zero means unlimited.
	MaxQuotedStringLength() int
}

// NopContext implements Context with do-nothing callbacks which all succeed.
// Embed it to implement partial contexts.
type NopContext struct{}

var _ Context = NopContext{}

func (NopContext) BeginDocument() bool { return true }

func (NopContext) EndDocument(ok bool) bool { return ok }

func (NopContext) Prose(text []byte) bool { return true }

func (NopContext) QuotedString(text []byte) bool { return true }

func (NopContext) Comment(text []byte) bool { return true }

func (NopContext) Rulename(name []byte) bool { return true }

func (NopContext) FirstNumber(radix abnf.Radix, digits []byte) bool { return true }

func (NopContext) NextNumber(radix abnf.Radix, digits []byte) bool { return true }

func (NopContext) LastNumber(radix abnf.Radix, digits []byte) bool { return true }

func (NopContext) Repeat(lower, upper int) bool { return true }

func (NopContext) BeginGroup() bool { return true }

func (NopContext) EndGroup(ok bool) bool { return ok }

func (NopContext) BeginOption() bool { return true }

func (NopContext) EndOption(ok bool) bool { return ok }

func (NopContext) BeginRepetition() bool { return true }

func (NopContext) EndRepetition(ok bool) bool { return ok }

func (NopContext) BeginConcatenation() bool { return true }

func (NopContext) EndConcatenation(ok bool) bool { return ok }

func (NopContext) BeginAlternation() bool { return true }

func (NopContext) EndAlternation(ok bool) bool { return ok }

func (NopContext) BeginRule(name []byte, incremental bool, line int) bool { return true }

func (NopContext) EndRule(name []byte, incremental bool, ok bool) bool { return ok }

func (NopContext) Error(code abnf.ErrorCode, line int) {}

func (NopContext) MaxQuotedStringLength() int { return 0 }

var nop Context = NopContext{}

// ctxOf maps a nil context to the shared no-op context, so that advancers
// need not guard every callback.
func ctxOf(ctx Context) Context {
	if ctx == nil {
		return nop
	}
	return ctx
}
