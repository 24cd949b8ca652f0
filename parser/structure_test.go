package parser

import (
	"testing"

	"github.com/npillmayer/abnf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// balance counts begin/end pairs per structural production.
type balance struct {
	recorder
	begins map[string]int
	ends   map[string]int
	rules  []string
	incr   []bool
}

func newBalance() *balance {
	return &balance{begins: make(map[string]int), ends: make(map[string]int)}
}

func (b *balance) BeginGroup() bool { b.begins["group"]++; return true }

func (b *balance) EndGroup(ok bool) bool { b.ends["group"]++; return ok }

func (b *balance) BeginOption() bool { b.begins["option"]++; return true }

func (b *balance) EndOption(ok bool) bool { b.ends["option"]++; return ok }

func (b *balance) BeginRepetition() bool { b.begins["repetition"]++; return true }

func (b *balance) EndRepetition(ok bool) bool { b.ends["repetition"]++; return ok }

func (b *balance) BeginConcatenation() bool { b.begins["concatenation"]++; return true }

func (b *balance) EndConcatenation(ok bool) bool { b.ends["concatenation"]++; return ok }

func (b *balance) BeginAlternation() bool { b.begins["alternation"]++; return true }

func (b *balance) EndAlternation(ok bool) bool { b.ends["alternation"]++; return ok }

func (b *balance) BeginRule(name []byte, incremental bool, line int) bool {
	b.begins["rule"]++
	b.rules = append(b.rules, string(name))
	b.incr = append(b.incr, incremental)
	return true
}

func (b *balance) EndRule(name []byte, incremental bool, ok bool) bool {
	b.ends["rule"]++
	return ok
}

func (b *balance) check(t *testing.T) {
	t.Helper()
	for name, n := range b.begins {
		if b.ends[name] != n {
			t.Errorf("%s: %d begin events but %d end events", name, n, b.ends[name])
		}
	}
}

func TestAdvanceRepetitionDefaultBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	c := abnf.NewCursor([]byte("rulename"))
	r := &recorder{}
	if !AdvanceRepetition(c, r) || !c.AtEnd() {
		t.Fatalf("bare element should parse as repetition")
	}
	// no repeat event: the sink keeps the (1,1) default
	if len(r.repeats) != 0 {
		t.Errorf("no repeat event expected, got %v", r.repeats)
	}
	c = abnf.NewCursor([]byte("2*3rulename"))
	r = &recorder{}
	if !AdvanceRepetition(c, r) || !c.AtEnd() {
		t.Fatalf("prefixed element should parse as repetition")
	}
	if len(r.repeats) != 1 || r.repeats[0] != [2]int{2, 3} {
		t.Errorf("expected bounds (2,3), got %v", r.repeats)
	}
}

func TestAdvanceConcatenation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	b := newBalance()
	c := abnf.NewCursor([]byte(`first second "three"`))
	if !AdvanceConcatenation(c, b) || !c.AtEnd() {
		t.Fatalf("concatenation should parse completely")
	}
	b.check(t)
	if b.begins["repetition"] != 3 {
		t.Errorf("expected 3 repetitions, got %d", b.begins["repetition"])
	}
}

func TestAdvanceAlternation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	b := newBalance()
	c := abnf.NewCursor([]byte(`one / two three / "four"`))
	if !AdvanceAlternation(c, b) || !c.AtEnd() {
		t.Fatalf("alternation should parse completely")
	}
	b.check(t)
	if b.begins["concatenation"] != 3 {
		t.Errorf("expected 3 concatenations, got %d", b.begins["concatenation"])
	}
}

func TestAdvanceGroupAndOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	b := newBalance()
	c := abnf.NewCursor([]byte(`( a / b [ c ] )`))
	if !AdvanceGroup(c, b) || !c.AtEnd() {
		t.Fatalf("group should parse completely")
	}
	b.check(t)
	if b.begins["group"] != 1 || b.begins["option"] != 1 {
		t.Errorf("expected one group and one option, got %d/%d",
			b.begins["group"], b.begins["option"])
	}
	c = abnf.NewCursor([]byte(`( a`))
	if AdvanceGroup(c, newBalance()) {
		t.Errorf("unclosed group should fail")
	}
	if c.Pos() != 0 {
		t.Errorf("failed group advancer must not move the cursor")
	}
}

func TestAdvanceDefinedAs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	cases := []struct {
		input       string
		incremental bool
		ok          bool
	}{
		{" = ", false, true},
		{"=", false, true},
		{" =/ ", true, true},
		{"=/", true, true},
		{" ", false, false},
		{": ", false, false},
	}
	for _, cs := range cases {
		c := abnf.NewCursor([]byte(cs.input))
		incremental, ok := AdvanceDefinedAs(c, nil)
		if ok != cs.ok || incremental != cs.incremental {
			t.Errorf("defined-as %q: got (%v,%v)", cs.input, incremental, ok)
		}
		if !ok && c.Pos() != 0 {
			t.Errorf("defined-as %q: failed advancer must not move the cursor", cs.input)
		}
	}
}

func TestAdvanceRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	b := newBalance()
	c := abnf.NewCursor([]byte("wsp = \" \" / \"x\"\n"))
	if !AdvanceRule(c, b) || !c.AtEnd() {
		t.Fatalf("rule should parse completely")
	}
	b.check(t)
	if len(b.rules) != 1 || b.rules[0] != "wsp" || b.incr[0] {
		t.Errorf("expected basic rule 'wsp', got %v/%v", b.rules, b.incr)
	}
	b = newBalance()
	c = abnf.NewCursor([]byte("wsp =/ \"y\"\n"))
	if !AdvanceRule(c, b) || !c.AtEnd() {
		t.Fatalf("incremental rule should parse completely")
	}
	if len(b.incr) != 1 || !b.incr[0] {
		t.Errorf("expected the incremental flag on '=/'")
	}
	c = abnf.NewCursor([]byte("= rhs\n"))
	if AdvanceRule(c, newBalance()) {
		t.Errorf("a rule starts with a rule name")
	}
	if c.Pos() != 0 {
		t.Errorf("failed rule advancer must not move the cursor")
	}
}

// A rule continued on the next line (newline followed by whitespace) stays
// one rule.
func TestAdvanceRuleContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	b := newBalance()
	c := abnf.NewCursor([]byte("r = one\n      / two\n"))
	if !AdvanceRule(c, b) || !c.AtEnd() {
		t.Fatalf("continuation lines belong to the rule")
	}
	b.check(t)
	if b.begins["concatenation"] != 2 {
		t.Errorf("expected 2 concatenations, got %d", b.begins["concatenation"])
	}
}

func TestAdvanceRulelist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	input := "; leading comment\n" +
		"\n" +
		"a = \"x\"\n" +
		"   ; indented comment\n" +
		"b = a a\n"
	b := newBalance()
	c := abnf.NewCursor([]byte(input))
	if !AdvanceRulelist(c, b) || !c.AtEnd() {
		t.Fatalf("rule list should parse completely")
	}
	b.check(t)
	if len(b.rules) != 2 {
		t.Errorf("expected 2 rules, got %v", b.rules)
	}
}

func TestAdvanceRulelistEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	c := abnf.NewCursor(nil)
	if !AdvanceRulelist(c, newBalance()) {
		t.Errorf("empty input is an empty rule list")
	}
	c = abnf.NewCursor([]byte("\n; only comments\n\n"))
	if !AdvanceRulelist(c, newBalance()) {
		t.Errorf("comments and blank lines are an empty rule list")
	}
}

func TestAdvanceRulelistStops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "abnf.parser")
	defer teardown()
	c := abnf.NewCursor([]byte("a = \"x\"\n???\n"))
	if AdvanceRulelist(c, newBalance()) {
		t.Errorf("junk after the first rule is not a rule list")
	}
	if c.Lineno() != 2 {
		t.Errorf("cursor should stop on line 2, is on %d", c.Lineno())
	}
}
