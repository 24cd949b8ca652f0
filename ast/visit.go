package ast

import "github.com/npillmayer/abnf"

// Visitor is the client side of a depth-first traversal over a syntax
// tree. Structural nodes come as begin/end pairs, terminals as one-shot
// calls. A number node in sequence mode produces one Number call per digit
// string, in order; a range produces a single NumberRange call.
//
// NopVisitor is provided for embedding, so that clients implement only the
// calls they care about.
type Visitor interface {
	BeginDocument()
	EndDocument()
	BeginRule(name string)
	EndRule()
	BeginAlternation()
	EndAlternation()
	BeginConcatenation()
	EndConcatenation()
	BeginGroup()
	EndGroup()
	BeginOption()
	EndOption()
	BeginRepetition(lower, upper int)
	EndRepetition()
	Rulename(name string)
	QuotedString(text string)
	Prose(text string)
	Number(radix abnf.Radix, digits string)
	NumberRange(radix abnf.Radix, from, to string)
}

// NopVisitor implements Visitor with do-nothing methods. Embed it to
// implement partial visitors.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

func (NopVisitor) BeginDocument() {}

func (NopVisitor) EndDocument() {}

func (NopVisitor) BeginRule(name string) {}

func (NopVisitor) EndRule() {}

func (NopVisitor) BeginAlternation() {}

func (NopVisitor) EndAlternation() {}

func (NopVisitor) BeginConcatenation() {}

func (NopVisitor) EndConcatenation() {}

func (NopVisitor) BeginGroup() {}

func (NopVisitor) EndGroup() {}

func (NopVisitor) BeginOption() {}

func (NopVisitor) EndOption() {}

func (NopVisitor) BeginRepetition(lower, upper int) {}

func (NopVisitor) EndRepetition() {}

func (NopVisitor) Rulename(name string) {}

func (NopVisitor) QuotedString(text string) {}

func (NopVisitor) Prose(text string) {}

func (NopVisitor) Number(radix abnf.Radix, digits string) {}

func (NopVisitor) NumberRange(radix abnf.Radix, from, to string) {}

// Traverse walks the tree depth-first, rules in the order of their
// definition. It is a no-op on a failed parse.
func (t *Tree) Traverse(v Visitor) {
	if t.root == nil {
		return
	}
	traverseNode(v, t.root)
}

func traverseNode(v Visitor, n Node) {
	switch n := n.(type) {
	case *Prose:
		v.Prose(n.Text)
	case *QuotedString:
		v.QuotedString(n.Text)
	case *Rulename:
		v.Rulename(n.Name)
	case *Number:
		if n.IsRange() {
			v.NumberRange(n.Radix, n.Values()[0], n.Values()[1])
		} else {
			for _, digits := range n.Values() {
				v.Number(n.Radix, digits)
			}
		}
	case *Repetition:
		v.BeginRepetition(n.Lower, n.Upper)
		traverseNode(v, n.Element())
		v.EndRepetition()
	case *Group:
		v.BeginGroup()
		for _, child := range n.Children() {
			traverseNode(v, child)
		}
		v.EndGroup()
	case *Option:
		v.BeginOption()
		for _, child := range n.Children() {
			traverseNode(v, child)
		}
		v.EndOption()
	case *Concatenation:
		v.BeginConcatenation()
		for _, child := range n.Children() {
			traverseNode(v, child)
		}
		v.EndConcatenation()
	case *Alternation:
		v.BeginAlternation()
		for _, child := range n.Children() {
			traverseNode(v, child)
		}
		v.EndAlternation()
	case *Rule:
		v.BeginRule(n.Name())
		for _, child := range n.Children() {
			traverseNode(v, child)
		}
		v.EndRule()
	case *Rulelist:
		v.BeginDocument()
		n.each(func(r *Rule) {
			traverseNode(v, r)
		})
		v.EndDocument()
	}
}
