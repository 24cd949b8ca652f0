package ast_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/abnf/ast"
)

func ExampleParse() {
	src := []byte("greeting = \"hello\" / \"hi\"   ; salutations\n")
	tree := ast.Parse(src)
	if err := tree.Err(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tree.RulesCount(), tree.Rulelist().Names())
	// Output: 1 [greeting]
}

func ExampleWrite() {
	src := []byte("a   =  \"x\"\na =/ 1*( b / c )\n")
	tree := ast.Parse(src)
	var sb strings.Builder
	if err := ast.Write(tree, &sb); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(sb.String())
	// Output: a = "x" / 1*(b / c)
}
