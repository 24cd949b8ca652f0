package abnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Cursor is a forward cursor over a byte buffer containing grammar source,
// carrying a 1-based line number. Line counting tolerates all three common
// line endings: CRLF counts as a single line break, as do lone LF and
// lone CR.
//
// Advancers save a cursor by value and restore it on failure
// ("commit on success"):
//
//    save := *c
//    …
//    *c = save      // give back everything consumed
//
// Two cursors over the same buffer denote the same position iff their
// offsets (Pos) are equal.
type Cursor struct {
	src    []byte
	pos    int
	line   int
	prevCR bool // last consumed byte was CR; suppresses the count for a following LF
}

// NewCursor creates a cursor positioned at the start of src, on line 1.
func NewCursor(src []byte) *Cursor {
	return &Cursor{src: src, line: 1}
}

// AtEnd returns true if no input is left.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Peek returns the byte at the current position. It must not be called with
// the cursor at the end of input; AtEnd guards it.
func (c *Cursor) Peek() byte {
	return c.src[c.pos]
}

// Next consumes one byte. Consuming CR or LF moves the cursor to the next
// line, except for an LF directly following a CR.
func (c *Cursor) Next() {
	if c.AtEnd() {
		return
	}
	ch := c.src[c.pos]
	switch {
	case ch == '\r':
		c.line++
		c.prevCR = true
	case ch == '\n':
		if !c.prevCR {
			c.line++
		}
		c.prevCR = false
	default:
		c.prevCR = false
	}
	c.pos++
}

// Pos returns the byte offset of the cursor within the source buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Lineno returns the 1-based line number of the current position.
func (c *Cursor) Lineno() int {
	return c.line
}

// Text returns the source bytes a span delimits. The returned slice aliases
// the cursor's buffer; clients wanting ownership have to copy.
func (c *Cursor) Text(s Span) []byte {
	return c.src[s.From():s.To()]
}

// SpanFrom builds the span from a previously remembered offset up to the
// current position.
func (c *Cursor) SpanFrom(start int) Span {
	return Span{uint64(start), uint64(c.pos)}
}
