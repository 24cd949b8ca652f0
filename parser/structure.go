package parser

import (
	"github.com/npillmayer/abnf"
	"github.com/npillmayer/abnf/chars"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'abnf.parser'.
func tracer() tracing.Trace {
	return tracing.Select("abnf.parser")
}

// The structural productions are mutually recursive: element refers to
// group and option, which refer back to alternation, then down through
// concatenation and repetition to element again. Go resolves the recursion
// without forward declarations; the advancers below run from the whitespace
// helpers up to the top-level rule list.

// advanceCommentNewline consumes c-nl = comment / newline.
func advanceCommentNewline(c *abnf.Cursor, ctx Context) bool {
	if AdvanceComment(c, ctx) {
		return true
	}
	return chars.AdvanceNewline(c)
}

// advanceCWsp consumes c-wsp = WSP / (c-nl WSP). A line break only counts
// as inner whitespace when the following line continues with WSP.
func advanceCWsp(c *abnf.Cursor, ctx Context) bool {
	if !c.AtEnd() && chars.IsWhitespace(c.Peek()) {
		c.Next()
		return true
	}
	save := *c
	if advanceCommentNewline(c, ctx) {
		if !c.AtEnd() && chars.IsWhitespace(c.Peek()) {
			c.Next()
			return true
		}
	}
	*c = save
	return false
}

// advanceCWsps consumes *c-wsp.
func advanceCWsps(c *abnf.Cursor, ctx Context) {
	UnlimitedRange(c, func(c *abnf.Cursor) bool {
		return advanceCWsp(c, ctx)
	})
}

// AdvanceElement consumes one element:
//
//    element = rulename / group / option / char-val / num-val / prose-val
//
// First match wins. element emits no begin/end events of its own.
func AdvanceElement(c *abnf.Cursor, ctx Context) bool {
	if AdvanceRulename(c, ctx) {
		return true
	}
	if AdvanceGroup(c, ctx) {
		return true
	}
	if AdvanceOption(c, ctx) {
		return true
	}
	if AdvanceNumber(c, ctx) {
		return true
	}
	if AdvanceQuotedString(c, ctx) {
		return true
	}
	return AdvanceProse(c, ctx)
}

// AdvanceRepetition consumes repetition = [repeat] element. Without a
// repeat prefix the bounds default to (1,1); the context then receives no
// Repeat call between BeginRepetition and the element events.
func AdvanceRepetition(c *abnf.Cursor, ctx Context) bool {
	cx := ctxOf(ctx)
	if !cx.BeginRepetition() {
		return false
	}
	save := *c
	AdvanceRepeat(c, cx)
	ok := AdvanceElement(c, cx)
	if !ok {
		*c = save
	}
	ret := cx.EndRepetition(ok)
	return ok && ret
}

// AdvanceConcatenation consumes:
//
//    concatenation = repetition *(1*c-wsp repetition)
func AdvanceConcatenation(c *abnf.Cursor, ctx Context) bool {
	cx := ctxOf(ctx)
	if !cx.BeginConcatenation() {
		return false
	}
	ok := AdvanceRepetition(c, cx)
	if ok {
		for {
			save := *c
			if !RepeatRange(c, 1, abnf.Unbounded, func(c *abnf.Cursor) bool {
				return advanceCWsp(c, cx)
			}) {
				break
			}
			if !AdvanceRepetition(c, cx) {
				*c = save
				break
			}
		}
	}
	ret := cx.EndConcatenation(ok)
	return ok && ret
}

// AdvanceAlternation consumes:
//
//    alternation = concatenation *(*c-wsp "/" *c-wsp concatenation)
func AdvanceAlternation(c *abnf.Cursor, ctx Context) bool {
	cx := ctxOf(ctx)
	if !cx.BeginAlternation() {
		return false
	}
	ok := AdvanceConcatenation(c, cx)
	if ok {
		for {
			save := *c
			advanceCWsps(c, cx)
			if c.AtEnd() || c.Peek() != '/' {
				*c = save
				break
			}
			c.Next()
			advanceCWsps(c, cx)
			if !AdvanceConcatenation(c, cx) {
				*c = save
				break
			}
		}
	}
	ret := cx.EndAlternation(ok)
	return ok && ret
}

// AdvanceGroup consumes group = "(" *c-wsp alternation *c-wsp ")".
func AdvanceGroup(c *abnf.Cursor, ctx Context) bool {
	return advanceBracketed(c, ctx, '(', ')', Context.BeginGroup, Context.EndGroup)
}

// AdvanceOption consumes option = "[" *c-wsp alternation *c-wsp "]".
func AdvanceOption(c *abnf.Cursor, ctx Context) bool {
	return advanceBracketed(c, ctx, '[', ']', Context.BeginOption, Context.EndOption)
}

func advanceBracketed(c *abnf.Cursor, ctx Context, open, close byte,
	begin func(Context) bool, end func(Context, bool) bool) bool {
	//
	save := *c
	if c.AtEnd() || c.Peek() != open {
		return false
	}
	c.Next()
	cx := ctxOf(ctx)
	if !begin(cx) {
		*c = save
		return false
	}
	ok := false
	advanceCWsps(c, cx)
	if AdvanceAlternation(c, cx) {
		advanceCWsps(c, cx)
		if !c.AtEnd() && c.Peek() == close {
			c.Next()
			ok = true
		}
	}
	if !ok {
		*c = save
	}
	ret := end(cx, ok)
	return ok && ret
}

// AdvanceDefinedAs consumes defined-as = *c-wsp ("=" / "=/") *c-wsp and
// reports whether the incremental-alternatives variant "=/" was used.
func AdvanceDefinedAs(c *abnf.Cursor, ctx Context) (incremental bool, ok bool) {
	save := *c
	cx := ctxOf(ctx)
	advanceCWsps(c, cx)
	if c.AtEnd() || c.Peek() != '=' {
		*c = save
		return false, false
	}
	c.Next()
	if !c.AtEnd() && c.Peek() == '/' {
		c.Next()
		incremental = true
	}
	advanceCWsps(c, cx)
	return incremental, true
}

// AdvanceElements consumes elements = alternation *c-wsp.
func AdvanceElements(c *abnf.Cursor, ctx Context) bool {
	cx := ctxOf(ctx)
	if !AdvanceAlternation(c, cx) {
		return false
	}
	advanceCWsps(c, cx)
	return true
}

// AdvanceRule consumes one rule definition:
//
//    rule = rulename defined-as elements [c-nl]
//
// The left-hand rule name is validated silently (it is not an element
// reference) and handed to the context through BeginRule/EndRule, together
// with the incremental-alternatives flag from defined-as.
func AdvanceRule(c *abnf.Cursor, ctx Context) bool {
	save := *c
	cx := ctxOf(ctx)
	start := c.Pos()
	if !AdvanceRulename(c, nil) {
		return false
	}
	name := c.Text(c.SpanFrom(start))
	incremental, ok := AdvanceDefinedAs(c, cx)
	if !ok {
		*c = save
		return false
	}
	tracer().Debugf("rule %q, incremental=%v", string(name), incremental)
	if !cx.BeginRule(name, incremental, save.Lineno()) {
		*c = save
		return false
	}
	ok = AdvanceElements(c, cx)
	if ok {
		advanceCommentNewline(c, cx)
	} else {
		*c = save
	}
	ret := cx.EndRule(name, incremental, ok)
	return ok && ret
}

// AdvanceRulelist consumes the top-level production:
//
//    rulelist = 1*(rule / (*c-wsp c-nl))
//
// relaxed to accept empty input. Blank lines and bare comments between
// rules are tolerated. AdvanceRulelist succeeds iff the whole input was
// consumed; unlike the lower advancers it does not restore the cursor on
// failure but leaves it at the position where progress stopped, so that
// callers can report the offending line.
func AdvanceRulelist(c *abnf.Cursor, ctx Context) bool {
	cx := ctxOf(ctx)
	if !cx.BeginDocument() {
		return false
	}
	for !c.AtEnd() {
		if AdvanceRule(c, cx) {
			continue
		}
		save := *c
		advanceCWsps(c, cx)
		if advanceCommentNewline(c, cx) {
			continue
		}
		*c = save
		break
	}
	ok := c.AtEnd()
	if !ok {
		tracer().Debugf("rule list stops at line %d", c.Lineno())
	}
	ret := cx.EndDocument(ok)
	return ok && ret
}
