package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/abnf"
)

// NodeType is the discriminator for the node variants of a syntax tree.
type NodeType int8

const (
	UnknownType NodeType = iota
	ProseType
	NumberType
	QuotedStringType
	RulenameType
	RepetitionType
	GroupType
	OptionType
	ConcatenationType
	AlternationType
	RuleType
	RulelistType
)

func (t NodeType) String() string {
	switch t {
	case ProseType:
		return "prose"
	case NumberType:
		return "number"
	case QuotedStringType:
		return "quoted-string"
	case RulenameType:
		return "rulename"
	case RepetitionType:
		return "repetition"
	case GroupType:
		return "group"
	case OptionType:
		return "option"
	case ConcatenationType:
		return "concatenation"
	case AlternationType:
		return "alternation"
	case RuleType:
		return "rule"
	case RulelistType:
		return "rulelist"
	}
	return "unknown"
}

// Node is a node of the syntax tree. Concrete nodes are one of Prose,
// Number, QuotedString, Rulename, Repetition, Group, Option, Concatenation,
// Alternation, Rule and Rulelist. Nodes are exclusively owned by their
// parent; the rule list is the unique root.
type Node interface {
	Type() NodeType
}

// --- Terminal nodes ---------------------------------------------------

// Prose is an informal "<…>" placeholder description.
type Prose struct {
	Text string // inner text, brackets excluded
}

func (*Prose) Type() NodeType { return ProseType }

// QuotedString is a "…" literal.
type QuotedString struct {
	Text string // inner text, quotes excluded
}

func (*QuotedString) Type() NodeType { return QuotedStringType }

// Rulename is a reference to a rule by name.
type Rulename struct {
	Name string
}

func (*Rulename) Type() NodeType { return RulenameType }

// Number is a numeric terminal %b…, %d… or %x…. It stores its digit strings
// verbatim in their original radix. A range (%x01-7F) holds exactly two
// digit strings, a sequence (%x0D.0A) one or more, a single literal exactly
// one.
type Number struct {
	Radix   abnf.Radix
	values  []string
	isRange bool
}

func newNumber(radix abnf.Radix, first string) *Number {
	return &Number{Radix: radix, values: []string{first}}
}

func (*Number) Type() NodeType { return NumberType }

// IsRange returns true for the "-" range form.
func (n *Number) IsRange() bool { return n.isRange }

// Values returns the digit strings. For a range these are the two bounds.
func (n *Number) Values() []string { return n.values }

// setLast closes a range with its upper bound.
func (n *Number) setLast(text string) {
	n.isRange = true
	n.values = append(n.values, text)
}

// pushNext appends a sequence item.
func (n *Number) pushNext(text string) {
	n.values = append(n.values, text)
}

// --- Repetition -------------------------------------------------------

// Repetition qualifies a single element with a count range. Bounds default
// to (1,1); abnf.Unbounded marks an open upper bound.
type Repetition struct {
	Lower, Upper int
	element      Node
}

func newRepetition() *Repetition {
	return &Repetition{Lower: 1, Upper: 1}
}

func (*Repetition) Type() NodeType { return RepetitionType }

// Element returns the repeated element: a terminal node, a group or an
// option. It is never nil after a successful parse.
func (r *Repetition) Element() Node { return r.element }

func (r *Repetition) setRange(lower, upper int) {
	r.Lower, r.Upper = lower, upper
}

func (r *Repetition) setElement(n Node) {
	r.element = n
}

// --- Aggregates -------------------------------------------------------

// aggregate is the common child-list behaviour of group, option,
// concatenation, alternation and rule nodes.
type aggregate struct {
	children []Node
}

// Size returns the number of children.
func (a *aggregate) Size() int { return len(a.children) }

// Children returns the ordered child list.
func (a *aggregate) Children() []Node { return a.children }

func (a *aggregate) push(n Node) {
	a.children = append(a.children, n)
}

// Group is a parenthesised "( … )" alternation.
type Group struct {
	aggregate
}

func (*Group) Type() NodeType { return GroupType }

// Option is a bracketed "[ … ]" alternation, implicitly optional.
type Option struct {
	aggregate
}

func (*Option) Type() NodeType { return OptionType }

// Concatenation is a whitespace-separated sequence of repetitions.
type Concatenation struct {
	aggregate
}

func (*Concatenation) Type() NodeType { return ConcatenationType }

// Alternation is a "/"-separated choice of concatenations.
type Alternation struct {
	aggregate
}

func (*Alternation) Type() NodeType { return AlternationType }

// Rule is one rule definition. Incremental alternatives ("=/") merge into
// the alternation of the already existing rule node, so after a successful
// parse a rule holds a single alternation child.
type Rule struct {
	aggregate
	name string
}

func (*Rule) Type() NodeType { return RuleType }

// Name returns the rule name in its original spelling.
func (r *Rule) Name() string { return r.name }

// --- Rule list --------------------------------------------------------

// Rulelist is the root of a syntax tree. It owns the rule nodes and keeps a
// case-insensitive name index plus the insertion order of definitions.
type Rulelist struct {
	order *arraylist.List // rule names, insertion order
	index *treemap.Map    // rule name → *Rule, case-insensitive
}

func newRulelist() *Rulelist {
	return &Rulelist{
		order: arraylist.New(),
		index: treemap.NewWith(caselessStringComparator),
	}
}

func caselessStringComparator(a, b interface{}) int {
	return strings.Compare(strings.ToLower(a.(string)), strings.ToLower(b.(string)))
}

func (*Rulelist) Type() NodeType { return RulelistType }

// Size returns the number of rules.
func (rl *Rulelist) Size() int { return rl.index.Size() }

// Rule looks up a rule by name. Lookup is case-insensitive.
func (rl *Rulelist) Rule(name string) *Rule {
	if v, found := rl.index.Get(name); found {
		return v.(*Rule)
	}
	return nil
}

// Names returns the rule names in the order of their (basic) definitions,
// in original spelling.
func (rl *Rulelist) Names() []string {
	names := make([]string, 0, rl.index.Size())
	rl.each(func(r *Rule) {
		names = append(names, r.Name())
	})
	return names
}

// each walks the rules in insertion order. The order list keeps folded
// keys; slots of rules which have been extracted and never re-inserted are
// skipped.
func (rl *Rulelist) each(visit func(*Rule)) {
	rl.order.Each(func(_ int, v interface{}) {
		if r, found := rl.index.Get(v.(string)); found {
			visit(r.(*Rule))
		}
	})
}

// emplace inserts a rule under name. Re-insertions (incremental
// alternatives) keep the insertion-order slot of the first definition, in
// whatever case variant the definition spelled the name.
func (rl *Rulelist) emplace(name string, r *Rule) {
	folded := strings.ToLower(name)
	if !rl.order.Contains(folded) {
		rl.order.Add(folded)
	}
	rl.index.Put(name, r)
}

// extract removes and returns the rule registered under name, surrendering
// ownership to the caller. The insertion-order slot stays reserved until
// the rule is re-inserted (or forever orphaned if it never is).
func (rl *Rulelist) extract(name string) (*Rule, bool) {
	v, found := rl.index.Get(name)
	if !found {
		return nil, false
	}
	rl.index.Remove(name)
	return v.(*Rule), true
}
