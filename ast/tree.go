package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"

	"github.com/npillmayer/abnf"
	"github.com/npillmayer/abnf/parser"
)

// Tree is the result of a parse: either a rule list, or the first error the
// parse ran into. No partial tree is kept on error.
type Tree struct {
	ec   abnf.ErrorCode
	line int
	what string
	root *Rulelist
}

// Parse parses ABNF grammar source into a syntax tree. The source must be
// US-ASCII; CRLF, LF and CR line endings are all accepted.
//
// Parse always returns a tree; inspect ErrorCode or Err for failure.
func Parse(src []byte, opts ...BuilderOption) *Tree {
	b := NewBuilder(opts...)
	c := abnf.NewCursor(src)
	ok := parser.AdvanceRulelist(c, b)
	t := &Tree{ec: b.ec, line: b.line, what: b.what, root: b.root}
	if !ok {
		if t.ec == abnf.OK {
			t.ec = abnf.ErrBadSequence
			t.line = c.Lineno()
		}
		t.root = nil
	}
	tracer().Infof("parsed %d rules, error=%v", t.RulesCount(), t.ec)
	return t
}

// ErrorCode returns abnf.OK for a successful parse, otherwise the first
// error encountered.
func (t *Tree) ErrorCode() abnf.ErrorCode {
	return t.ec
}

// ErrorLine returns the 1-based line number of the error, or 0 if there is
// none.
func (t *Tree) ErrorLine() int {
	return t.line
}

// ErrorText returns the offending rule name for ErrRuleUndefined and
// ErrRulenameDuplicated, otherwise the empty string.
func (t *Tree) ErrorText() string {
	return t.what
}

// Err folds the error state into a single error value, nil on success.
func (t *Tree) Err() error {
	if t.ec == abnf.OK {
		return nil
	}
	if t.what != "" {
		return fmt.Errorf("%s '%s' at line %d", t.ec, t.what, t.line)
	}
	return fmt.Errorf("%s at line %d", t.ec, t.line)
}

// RulesCount returns the number of rules, 0 on a failed parse. Incremental
// alternatives extend existing rules and do not add to the count.
func (t *Tree) RulesCount() int {
	if t.root == nil {
		return 0
	}
	return t.root.Size()
}

// Rulelist returns the root of the tree, nil on a failed parse.
func (t *Tree) Rulelist() *Rulelist {
	return t.root
}
