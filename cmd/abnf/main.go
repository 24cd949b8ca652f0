package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/abnf"
	"github.com/npillmayer/abnf/ast"
)

// tracer traces with key 'abnf.cli'.
func tracer() tracing.Trace {
	return tracing.Select("abnf.cli")
}

// main reads an ABNF grammar file given as a command-line argument, parses
// it and pretty-prints the syntax tree, exiting with a non-zero status on
// parse failure. Without an argument it starts an interactive
// read-parse-print loop, where users may enter grammar fragments and
// inspect the resulting trees.
func main() {
	// set up logging
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	maxstr := flag.Int("maxstr", 0, "Maximum quoted-string length, 0 = unlimited")
	flag.Parse()
	for _, key := range []string{"abnf.parser", "abnf.ast", "abnf.cli"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	//
	if flag.NArg() == 0 {
		repl(*maxstr)
		return
	}
	filename := flag.Arg(0)
	source, err := ioutil.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().Infof("parsing %q", filename)
	tree := ast.Parse(source, ast.MaxQuotedStringLength(*maxstr))
	if err := tree.Err(); err != nil {
		pterm.Error.Printf("%s: %v\n", filename, err)
		os.Exit(1)
	}
	pterm.Info.Printf("%s: %d rules\n", filename, tree.RulesCount())
	tree.Traverse(newTreePrinter(os.Stdout))
}

// repl runs the interactive loop. Each submitted line has to be a complete
// grammar fragment; rules accumulate over the session, so that incremental
// alternatives can reference earlier input.
func repl(maxstr int) {
	pterm.Info.Println("Welcome to ABNF") // colored welcome message
	pterm.Info.Println("Enter grammar rules, or :print, :reset, quit with <ctrl>D")
	rl, err := readline.New("abnf> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	var rules []string
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimRight(line, " \t")
		switch {
		case line == "":
			continue
		case line == ":reset":
			rules = nil
			continue
		case line == ":print":
			printSession(rules, maxstr)
			continue
		}
		probe := append(rules, line)
		tree := ast.Parse(sourceOf(probe), ast.MaxQuotedStringLength(maxstr))
		if err := tree.Err(); err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		rules = probe
		printSession(rules, maxstr)
	}
}

func sourceOf(rules []string) []byte {
	return []byte(strings.Join(rules, "\n") + "\n")
}

func printSession(rules []string, maxstr int) {
	tree := ast.Parse(sourceOf(rules), ast.MaxQuotedStringLength(maxstr))
	if err := tree.Err(); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tree.Traverse(newTreePrinter(os.Stdout))
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// --- Tree printing ----------------------------------------------------

// treePrinter prints one line per AST node, indented by nesting level.
type treePrinter struct {
	ast.NopVisitor
	w      io.Writer
	indent int
}

func newTreePrinter(w io.Writer) *treePrinter {
	return &treePrinter{w: w}
}

func (tp *treePrinter) line(format string, args ...interface{}) {
	prefix := strings.Repeat("|   ", tp.indent)
	fmt.Fprintf(tp.w, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}

func (tp *treePrinter) BeginDocument() {
	tp.line("DOCUMENT")
	tp.indent++
}

func (tp *treePrinter) EndDocument() {
	tp.indent--
}

func (tp *treePrinter) BeginRule(name string) {
	tp.line("RULE %q", name)
	tp.indent++
}

func (tp *treePrinter) EndRule() {
	tp.indent--
}

func (tp *treePrinter) BeginAlternation() {
	tp.line("ALTERNATION")
	tp.indent++
}

func (tp *treePrinter) EndAlternation() {
	tp.indent--
}

func (tp *treePrinter) BeginConcatenation() {
	tp.line("CONCATENATION")
	tp.indent++
}

func (tp *treePrinter) EndConcatenation() {
	tp.indent--
}

func (tp *treePrinter) BeginGroup() {
	tp.line("GROUP")
	tp.indent++
}

func (tp *treePrinter) EndGroup() {
	tp.indent--
}

func (tp *treePrinter) BeginOption() {
	tp.line("OPTION")
	tp.indent++
}

func (tp *treePrinter) EndOption() {
	tp.indent--
}

func (tp *treePrinter) BeginRepetition(lower, upper int) {
	if lower == 1 && upper == 1 {
		tp.line("REPETITION")
	} else if upper == abnf.Unbounded {
		tp.line("REPETITION %d…inf", lower)
	} else {
		tp.line("REPETITION %d…%d", lower, upper)
	}
	tp.indent++
}

func (tp *treePrinter) EndRepetition() {
	tp.indent--
}

func (tp *treePrinter) Rulename(name string) {
	tp.line("RULENAME %q", name)
}

func (tp *treePrinter) QuotedString(text string) {
	tp.line("QUOTED STRING %q", text)
}

func (tp *treePrinter) Prose(text string) {
	tp.line("PROSE %q", text)
}

func (tp *treePrinter) Number(radix abnf.Radix, digits string) {
	tp.line("NUMBER %%%c%s", radix.Letter(), digits)
}

func (tp *treePrinter) NumberRange(radix abnf.Radix, from, to string) {
	tp.line("NUMBER RANGE %%%c%s-%s", radix.Letter(), from, to)
}
