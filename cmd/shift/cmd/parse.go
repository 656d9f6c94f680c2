package cmd

import (
	"fmt"
	"strings"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Shift source file and display its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", true, "dump the declaration tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	sink := newSink()

	f, err := parseFile(args[0], sink)
	if err != nil {
		return err
	}

	if parseDumpAST {
		dumpFile(f)
	}

	if sink.PrintExitClear() {
		return fmt.Errorf("parsing failed")
	}
	return nil
}

func dumpFile(f *ast.File) {
	fmt.Printf("File %s\n", f.Path)
	if f.ModuleDecl != nil {
		fmt.Printf("  module %s\n", f.ModuleDecl.Name.String())
	}
	for _, u := range f.Uses {
		fmt.Printf("  use %s\n", u.String())
	}
	for _, c := range f.Classes {
		dumpClass(c, 1)
	}
	for _, fn := range f.Funcs {
		dumpFunction(fn, 1)
	}
	for _, v := range f.Vars {
		dumpVariable(v, 1)
	}
}

func dumpClass(c *ast.Class, indent int) {
	pad := strings.Repeat("  ", indent)
	base := ""
	if c.HasBase() {
		base = " : " + c.BaseName.String()
	}
	fmt.Printf("%sclass %s%s\n", pad, c.Name(), base)
	for _, v := range c.Vars {
		dumpVariable(v, indent+1)
	}
	for _, fn := range c.Funcs {
		dumpFunction(fn, indent+1)
	}
}

func dumpVariable(v *ast.Variable, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Printf("%svar %s: %s\n", pad, v.Name(), typeString(v.Type))
}

func dumpFunction(fn *ast.Function, indent int) {
	pad := strings.Repeat("  ", indent)
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Key, typeString(p.Type))
	}
	fmt.Printf("%sfunc %s(%s): %s [%d stmt(s)]\n", pad, fn.Name(), strings.Join(params, ", "), typeString(fn.ReturnType), len(fn.Body))
}

func typeString(t *ast.Type) string {
	if t == nil {
		return "?"
	}
	if t.IsVoid {
		return "void"
	}
	return t.Name.String() + strings.Repeat("[]", t.ArrayDims)
}
