package cmd

import (
	"fmt"
	"os"

	"github.com/ark1409/shiftc/internal/cliutil"
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	flagWarnings bool
	flagWerror   bool
	flagColor    bool
	flagCpp      bool
	flagNoStd    bool
	flagLibPath  []string
	flagLib      []string
)

var rootCmd = &cobra.Command{
	Use:   "shift",
	Short: "Shift front-end compiler",
	Long: `shift is a front end for the Shift programming language: a
tokenizer, a recursive-descent parser, and a semantic analyzer.

It has no code generator or interpreter; -cpp/-c++ is accepted for
compatibility with the original argument parser but only warns that no
back end is implemented.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Unknown flags on the root command are ignored rather than aborting
	// parsing; no warning is printed for them.
	rootCmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}

	rootCmd.PersistentFlags().BoolVar(&flagWarnings, "warnings", false, "show warning diagnostics")
	rootCmd.PersistentFlags().BoolVar(&flagWerror, "warnings-as-errors", false, "treat warnings as committed errors")
	rootCmd.PersistentFlags().BoolVar(&flagColor, "color", false, "colorize diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&flagCpp, "cpp", false, "request a C++ back end (not implemented)")
	rootCmd.PersistentFlags().BoolVar(&flagCpp, "c++", false, "alias of -cpp")
	rootCmd.PersistentFlags().BoolVar(&flagNoStd, "no-std", false, "skip the implicit standard-library search path")
	rootCmd.PersistentFlags().StringArrayVar(&flagLibPath, "lib-path", nil, "add a library search glob (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&flagLib, "lib", nil, "add a library file (repeatable)")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// newSink builds the diagnostic sink shared by a subcommand's run,
// configured from the persistent flags.
func newSink() *diag.Sink {
	sink := diag.New(os.Stdout)
	sink.SetPrintWarnings(flagWarnings)
	sink.SetWerror(flagWerror)
	sink.SetColor(flagColor)
	if flagCpp {
		fmt.Fprintln(os.Stderr, "warning: -cpp/-c++ back end is not implemented")
	}
	return sink
}

// libraryFiles expands -lib-path glob patterns and appends the bare
// -lib entries. -no-std only suppresses an implicit search path this
// driver never added in the first place, so it is recorded but
// otherwise inert, matching the original argument parser's behavior.
func libraryFiles() ([]string, error) {
	expanded, err := cliutil.ExpandLibPaths(flagLibPath)
	if err != nil {
		return nil, fmt.Errorf("expanding -lib-path: %w", err)
	}
	return append(expanded, flagLib...), nil
}
