package cmd

import (
	"fmt"
	"os"

	"github.com/iamZamil/minic/internal/compiler"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Lex a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	res := compiler.Compile(source)
	for _, tok := range res.Tokens {
		fmt.Printf("%4d:%-3d %-12s %q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
	}

	if len(res.Errors.Lexical) > 0 {
		printErrors(os.Stderr, "lexical", source, res.Errors.Lexical, colorEnabled())
		return fmt.Errorf("%s: %d lexical error(s)", name, len(res.Errors.Lexical))
	}
	return nil
}
