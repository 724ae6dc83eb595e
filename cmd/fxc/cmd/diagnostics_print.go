package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamZamil/minic/internal/diagnostics"
)

// printErrors renders one diagnostic bucket with source context and a caret
// under the offending column, the way the teacher's internal/errors package
// formats a CompilerError -- colorized only when color is true.
func printErrors(w io.Writer, label, source string, errs []diagnostics.Diagnostic, color bool) {
	lines := strings.Split(source, "\n")
	for _, e := range errs {
		fmt.Fprintf(w, "%s: %d:%d: %s", label, e.Line, e.Column, e.Message)
		if e.Hint != "" {
			fmt.Fprintf(w, " (%s)", e.Hint)
		}
		fmt.Fprintln(w)

		if e.Line < 1 || e.Line > len(lines) {
			continue
		}
		src := lines[e.Line-1]
		prefix := fmt.Sprintf("%4d | ", e.Line)
		fmt.Fprintf(w, "%s%s\n", prefix, src)

		col := e.Column - 1
		if col < 0 {
			col = 0
		}
		pad := strings.Repeat(" ", len(prefix)+col)
		if color {
			fmt.Fprintf(w, "%s\033[1;31m^\033[0m\n", pad)
		} else {
			fmt.Fprintf(w, "%s^\n", pad)
		}
	}
}
