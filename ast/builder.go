package ast

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/abnf"
	"github.com/npillmayer/abnf/parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'abnf.ast'.
func tracer() tracing.Trace {
	return tracing.Select("abnf.ast")
}

// Builder is a parse context which assembles a syntax tree. Nodes are built
// on an internal stack, driven by the advancer events: begin events push a
// fresh node, end events pop it and either move it into its parent or
// discard it. Rule uniqueness and incremental-alternative resolution are
// enforced at BeginRule.
//
// A Builder is good for a single parse. Clients normally do not use it
// directly but call Parse.
type Builder struct {
	maxQuoted int
	stack     *arraystack.Stack
	root      *Rulelist
	ec        abnf.ErrorCode
	line      int
	what      string
}

var _ parser.Context = (*Builder)(nil)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// MaxQuotedStringLength limits the inner length of quoted-string literals.
// Zero, the default, means unlimited.
func MaxQuotedStringLength(n int) BuilderOption {
	return func(b *Builder) {
		b.maxQuoted = n
	}
}

// NewBuilder creates a Builder for a single parse.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{stack: arraystack.New()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// setError records the first error; later ones are dropped.
func (b *Builder) setError(code abnf.ErrorCode, line int, what string) {
	if b.ec != abnf.OK {
		return
	}
	b.ec = code
	b.line = line
	b.what = what
}

// desync flags an event sequence the stack discipline cannot digest. This
// cannot happen with the advancers of package parser; it guards against
// hand-written event sources.
func (b *Builder) desync(event string) bool {
	tracer().Errorf("syntax tree builder out of sync at %s", event)
	return false
}

func (b *Builder) top() (Node, bool) {
	v, ok := b.stack.Peek()
	if !ok {
		return nil, false
	}
	return v.(Node), true
}

func (b *Builder) pop() (Node, bool) {
	v, ok := b.stack.Pop()
	if !ok {
		return nil, false
	}
	return v.(Node), true
}

func (b *Builder) topRepetition(event string) (*Repetition, bool) {
	n, ok := b.top()
	if !ok {
		return nil, b.desync(event)
	}
	rep, ok := n.(*Repetition)
	if !ok {
		return nil, b.desync(event)
	}
	return rep, true
}

func (b *Builder) topNumber(event string) (*Number, bool) {
	n, ok := b.top()
	if !ok {
		return nil, b.desync(event)
	}
	num, ok := n.(*Number)
	if !ok {
		return nil, b.desync(event)
	}
	return num, true
}

// setElement makes n the element of the repetition on top of the stack.
func (b *Builder) setElement(event string, n Node) bool {
	rep, ok := b.topRepetition(event)
	if !ok {
		return false
	}
	rep.setElement(n)
	return true
}

// endChild pops the top node and, on ok, moves it into the aggregate now on
// top of the stack.
func (b *Builder) endChild(event string, ok bool) bool {
	child, popped := b.pop()
	if !popped {
		return b.desync(event)
	}
	if !ok {
		return false // child is discarded
	}
	parent, have := b.top()
	if !have {
		return b.desync(event)
	}
	switch p := parent.(type) {
	case *Rule:
		// Incremental alternatives merge into the existing alternation, so
		// that a rule ends up with a single alternation child.
		if alt, isAlt := child.(*Alternation); isAlt && p.Size() > 0 {
			existing := p.Children()[0].(*Alternation)
			existing.children = append(existing.children, alt.children...)
			return true
		}
		p.push(child)
	case *Group:
		p.push(child)
	case *Option:
		p.push(child)
	case *Concatenation:
		p.push(child)
	case *Alternation:
		p.push(child)
	default:
		return b.desync(event)
	}
	return true
}

// --- parser.Context ---------------------------------------------------

func (b *Builder) BeginDocument() bool {
	rl := newRulelist()
	b.root = rl
	b.stack.Push(rl)
	return true
}

func (b *Builder) EndDocument(ok bool) bool {
	if b.stack.Size() != 1 {
		return b.desync("end document")
	}
	b.stack.Pop()
	return ok
}

func (b *Builder) BeginRule(name []byte, incremental bool, line int) bool {
	n, have := b.top()
	if !have {
		return b.desync("begin rule")
	}
	rl, isList := n.(*Rulelist)
	if !isList {
		return b.desync("begin rule")
	}
	if incremental {
		r, found := rl.extract(string(name))
		if !found {
			b.setError(abnf.ErrRuleUndefined, line, string(name))
			return false
		}
		b.stack.Push(r)
		return true
	}
	if rl.Rule(string(name)) != nil {
		b.setError(abnf.ErrRulenameDuplicated, line, string(name))
		return false
	}
	b.stack.Push(&Rule{name: string(name)})
	return true
}

func (b *Builder) EndRule(name []byte, incremental bool, ok bool) bool {
	n, popped := b.pop()
	if !popped {
		return b.desync("end rule")
	}
	r, isRule := n.(*Rule)
	if !isRule {
		return b.desync("end rule")
	}
	if ok {
		rl, have := b.top()
		if !have {
			return b.desync("end rule")
		}
		rl.(*Rulelist).emplace(string(name), r)
	}
	return ok
}

func (b *Builder) BeginGroup() bool {
	b.stack.Push(&Group{})
	return true
}

func (b *Builder) EndGroup(ok bool) bool {
	child, popped := b.pop()
	if !popped {
		return b.desync("end group")
	}
	if ok && !b.setElement("end group", child) {
		return false
	}
	return ok
}

func (b *Builder) BeginOption() bool {
	b.stack.Push(&Option{})
	return true
}

func (b *Builder) EndOption(ok bool) bool {
	child, popped := b.pop()
	if !popped {
		return b.desync("end option")
	}
	if ok && !b.setElement("end option", child) {
		return false
	}
	return ok
}

func (b *Builder) BeginRepetition() bool {
	b.stack.Push(newRepetition())
	return true
}

func (b *Builder) EndRepetition(ok bool) bool {
	// A single numeric literal gets no closing LastNumber event; its node
	// is still pending on the stack here.
	if n, have := b.top(); have {
		if num, pending := n.(*Number); pending {
			b.pop()
			if ok && !b.setElement("end repetition", num) {
				return false
			}
		}
	}
	return b.endChild("end repetition", ok)
}

func (b *Builder) BeginConcatenation() bool {
	b.stack.Push(&Concatenation{})
	return true
}

func (b *Builder) EndConcatenation(ok bool) bool {
	return b.endChild("end concatenation", ok)
}

func (b *Builder) BeginAlternation() bool {
	b.stack.Push(&Alternation{})
	return true
}

func (b *Builder) EndAlternation(ok bool) bool {
	return b.endChild("end alternation", ok)
}

func (b *Builder) Prose(text []byte) bool {
	return b.setElement("prose", &Prose{Text: string(text)})
}

func (b *Builder) QuotedString(text []byte) bool {
	return b.setElement("quoted string", &QuotedString{Text: string(text)})
}

func (b *Builder) Rulename(name []byte) bool {
	return b.setElement("rulename", &Rulename{Name: string(name)})
}

func (b *Builder) Comment(text []byte) bool {
	return true // comments do not reach the tree
}

func (b *Builder) FirstNumber(radix abnf.Radix, digits []byte) bool {
	b.stack.Push(newNumber(radix, string(digits)))
	return true
}

func (b *Builder) NextNumber(radix abnf.Radix, digits []byte) bool {
	num, ok := b.topNumber("next number")
	if !ok {
		return false
	}
	num.pushNext(string(digits))
	return true
}

func (b *Builder) LastNumber(radix abnf.Radix, digits []byte) bool {
	num, ok := b.topNumber("last number")
	if !ok {
		return false
	}
	if len(digits) > 0 {
		// inequality of the positions flags a range: digits carry the
		// upper bound
		num.setLast(string(digits))
	}
	b.pop()
	return b.setElement("last number", num)
}

func (b *Builder) Repeat(lower, upper int) bool {
	rep, ok := b.topRepetition("repeat")
	if !ok {
		return false
	}
	rep.setRange(lower, upper)
	return true
}

func (b *Builder) Error(code abnf.ErrorCode, line int) {
	b.setError(code, line, "")
}

func (b *Builder) MaxQuotedStringLength() int {
	return b.maxQuoted
}
