package cmd

import (
	"fmt"
	"os"

	"github.com/iamZamil/minic/internal/compiler"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm [file]",
	Short: "Compile a source file and print its illustrative x86 assembly",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsm,
}

func init() {
	rootCmd.AddCommand(asmCmd)
}

func runAsm(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	res := compiler.Compile(source)
	fmt.Print(res.Assembly)

	if n := len(res.Errors.Lexical) + len(res.Errors.Syntax) + len(res.Errors.Semantic); n > 0 {
		printErrors(os.Stderr, "lexical", source, res.Errors.Lexical, colorEnabled())
		printErrors(os.Stderr, "syntax", source, res.Errors.Syntax, colorEnabled())
		printErrors(os.Stderr, "semantic", source, res.Errors.Semantic, colorEnabled())
		return fmt.Errorf("%s: %d diagnostic(s); assembly is illustrative only", name, n)
	}
	return nil
}
