package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/compiler"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	res := compiler.Compile(source)
	if res.AST != nil {
		dumpNode(res.AST, 0)
	}

	if len(res.Errors.Syntax) > 0 {
		printErrors(os.Stderr, "syntax", source, res.Errors.Syntax, colorEnabled())
		return fmt.Errorf("%s: %d syntax error(s)", name, len(res.Errors.Syntax))
	}
	return nil
}

// dumpNode renders a WireNode tree, the same positional shape spec.md §3
// describes, one line per node the way the teacher's dumpASTNode does.
func dumpNode(n *ast.WireNode, indent int) {
	pad := strings.Repeat("  ", indent)
	if n.Value != "" {
		fmt.Printf("%s%s: %q\n", pad, n.Kind, n.Value)
	} else {
		fmt.Printf("%s%s\n", pad, n.Kind)
	}
	for _, c := range n.Children {
		dumpNode(c, indent+1)
	}
}
