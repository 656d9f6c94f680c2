package cmd

import (
	"fmt"

	"github.com/ark1409/shiftc/internal/lexer/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Shift source file and print the resulting tokens",
	Long: `Tokenize a Shift source file and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Shift source code is tokenized.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "print only the diagnostics, not the tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	sink := newSink()

	_, toks, err := lexFile(args[0], sink)
	if err != nil {
		return err
	}

	if !lexOnlyErrors {
		for _, tok := range toks {
			printToken(tok)
		}
	}

	hadError := sink.PrintExitClear()
	if hadError {
		return fmt.Errorf("lexing failed")
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-7s] %q", tok.Kind, tok.Text)
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Line, tok.Col)
	}
	fmt.Println(out)
}
