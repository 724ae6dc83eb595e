package cmd

import (
	"fmt"
	"os"

	"github.com/iamZamil/minic/internal/compiler"
	"github.com/spf13/cobra"
)

var irOptimized bool

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Compile a source file and print its three-address IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)
	irCmd.Flags().BoolVar(&irOptimized, "optimized", false, "print the optimized IR instead of the raw generator output")
}

func runIR(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	res := compiler.Compile(source)
	seq := res.IR
	if irOptimized {
		seq = res.OptimizedIR
	}
	for _, instr := range seq {
		fmt.Println(instr.String())
	}

	if n := len(res.Errors.Lexical) + len(res.Errors.Syntax) + len(res.Errors.Semantic); n > 0 {
		printErrors(os.Stderr, "lexical", source, res.Errors.Lexical, colorEnabled())
		printErrors(os.Stderr, "syntax", source, res.Errors.Syntax, colorEnabled())
		printErrors(os.Stderr, "semantic", source, res.Errors.Semantic, colorEnabled())
		return fmt.Errorf("%s: %d diagnostic(s); IR is advisory only", name, n)
	}
	return nil
}
