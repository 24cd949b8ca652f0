package parser

import "github.com/npillmayer/abnf"

// RepeatRange drives a one-step advancer between a lower and an upper bound.
// step is applied up to lower times; if it fails before the lower bound is
// reached, RepeatRange returns false. It is then applied up to upper more
// times, stopping at the first failure, and RepeatRange returns true.
//
// RepeatRange does not restore the cursor on failure. step is expected to be
// commit-on-success, so the cursor sits after the last successful step;
// callers compose the combinator with a saved cursor of their own.
func RepeatRange(c *abnf.Cursor, lower, upper int, step func(*abnf.Cursor) bool) bool {
	for i := 0; i < lower; i++ {
		if c.AtEnd() || !step(c) {
			return false
		}
	}
	for i := 0; i < upper && !c.AtEnd(); i++ {
		if !step(c) {
			break
		}
	}
	return true
}

// UnlimitedRange drives step zero or more times, without an upper bound.
func UnlimitedRange(c *abnf.Cursor, step func(*abnf.Cursor) bool) bool {
	return RepeatRange(c, 0, abnf.Unbounded, step)
}
