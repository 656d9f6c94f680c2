package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/semantic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var analyzeReport string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file> [files...]",
	Short: "Parse and semantically analyze one or more Shift source files",
	Long: `Parse every given file, then run the semantic analyzer over the
whole set (module/class/function/variable tables, type resolution,
break/continue linking) and print its diagnostics.

Use --report yaml to additionally print a summary of the resolved
symbol tables.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", `additional report format: "yaml"`)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sink := newSink()

	files, err := parseFiles(args, sink)
	if err != nil {
		return err
	}

	if _, err := libraryFiles(); err != nil {
		return err
	}

	analyzer := semantic.New(sink)
	analyzer.Analyze(files)

	if analyzeReport == "yaml" {
		if err := printYAMLReport(analyzer.Tables()); err != nil {
			return fmt.Errorf("rendering yaml report: %w", err)
		}
	}

	if sink.PrintExitClear() {
		return fmt.Errorf("analysis failed")
	}
	return nil
}

// analysisReport is the --report yaml payload: a stable, sorted summary
// of the tables the analyzer built, independent of diagnostic text.
type analysisReport struct {
	Modules   []string `yaml:"modules"`
	Classes   []string `yaml:"classes"`
	Functions []string `yaml:"functions"`
	Variables []string `yaml:"variables"`
}

func printYAMLReport(t *semantic.Tables) error {
	report := analysisReport{
		Modules:   sortedKeys(t.Modules),
		Functions: sortedFuncKeys(t.Functions),
		Variables: sortedVarKeys(t.Variables),
		Classes:   sortedClassKeys(t.Classes),
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(report)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedClassKeys(m map[string]*ast.Class) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedVarKeys(m map[string]*ast.Variable) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedFuncKeys(m map[string]*ast.Function) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
