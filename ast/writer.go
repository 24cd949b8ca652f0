package ast

import (
	"io"
	"strconv"

	"github.com/npillmayer/abnf"
)

// Writer is a visitor which prints a syntax tree back as ABNF grammar
// source, one rule per line. The output is canonical, not a byte-exact
// reproduction of the parsed source: comments are gone, whitespace is
// normalised, incremental alternatives appear merged into their base rule.
// Re-parsing the output yields a structurally equal tree.
type Writer struct {
	NopVisitor
	w      io.Writer
	err    error
	levels []wlevel
	numRun bool // currently inside a numeric sequence element
}

type wlevel struct {
	sep   string
	count int
}

// Write prints the tree as ABNF source to w. On a failed parse it writes
// nothing and returns nil.
func Write(t *Tree, w io.Writer) error {
	wr := &Writer{w: w}
	t.Traverse(wr)
	return wr.err
}

func (wr *Writer) print(s string) {
	if wr.err != nil {
		return
	}
	_, wr.err = io.WriteString(wr.w, s)
}

// child separates the new child from its left sibling, if any.
func (wr *Writer) child() {
	wr.numRun = false
	if len(wr.levels) == 0 {
		return
	}
	top := &wr.levels[len(wr.levels)-1]
	if top.count > 0 {
		wr.print(top.sep)
	}
	top.count++
}

func (wr *Writer) push(sep string) {
	wr.levels = append(wr.levels, wlevel{sep: sep})
}

func (wr *Writer) pop() {
	wr.levels = wr.levels[:len(wr.levels)-1]
	wr.numRun = false
}

func (wr *Writer) BeginRule(name string) {
	wr.print(name)
	wr.print(" = ")
	wr.push(" / ") // a rule holds alternations
}

func (wr *Writer) EndRule() {
	wr.pop()
	wr.print("\n")
}

func (wr *Writer) BeginAlternation() {
	wr.child()
	wr.push(" / ")
}

func (wr *Writer) EndAlternation() {
	wr.pop()
}

func (wr *Writer) BeginConcatenation() {
	wr.child()
	wr.push(" ")
}

func (wr *Writer) EndConcatenation() {
	wr.pop()
}

func (wr *Writer) BeginRepetition(lower, upper int) {
	wr.child()
	wr.print(repeatPrefix(lower, upper))
	wr.push("")
}

func (wr *Writer) EndRepetition() {
	wr.pop()
}

func (wr *Writer) BeginGroup() {
	wr.print("(")
	wr.push(" / ")
}

func (wr *Writer) EndGroup() {
	wr.pop()
	wr.print(")")
}

func (wr *Writer) BeginOption() {
	wr.print("[")
	wr.push(" / ")
}

func (wr *Writer) EndOption() {
	wr.pop()
	wr.print("]")
}

func (wr *Writer) Rulename(name string) {
	wr.print(name)
}

func (wr *Writer) QuotedString(text string) {
	wr.print("\"")
	wr.print(text)
	wr.print("\"")
}

func (wr *Writer) Prose(text string) {
	wr.print("<")
	wr.print(text)
	wr.print(">")
}

func (wr *Writer) Number(radix abnf.Radix, digits string) {
	if wr.numRun {
		// a further item of a "." sequence
		wr.print(".")
		wr.print(digits)
		return
	}
	wr.numRun = true
	wr.print("%")
	wr.print(string(radix.Letter()))
	wr.print(digits)
}

func (wr *Writer) NumberRange(radix abnf.Radix, from, to string) {
	wr.print("%")
	wr.print(string(radix.Letter()))
	wr.print(from)
	wr.print("-")
	wr.print(to)
}

// repeatPrefix renders repetition bounds the way grammar source spells
// them: nothing for the default (1,1), an exact count, or a "*" range with
// optional bounds.
func repeatPrefix(lower, upper int) string {
	if lower == 1 && upper == 1 {
		return ""
	}
	if lower == upper {
		return strconv.Itoa(lower)
	}
	s := ""
	if lower > 0 {
		s = strconv.Itoa(lower)
	}
	s += "*"
	if upper != abnf.Unbounded {
		s += strconv.Itoa(upper)
	}
	return s
}
