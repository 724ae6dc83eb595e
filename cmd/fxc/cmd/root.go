package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version is stamped at build time via -ldflags, the way the teacher
	// pipeline's own CLI stamps its version string.
	Version = "0.1.0-dev"

	cacheDir string
	stats    bool
	noColor  bool

	// runID tags every log line of one invocation (and every rebuild of a
	// --watch session) for traceability. It never reaches CompilationResult
	// and has no bearing on the compiler's determinism.
	runID = uuid.NewString()[:8]
)

var rootCmd = &cobra.Command{
	Use:     "fxc",
	Short:   "A small C-like compiler that lowers to illustrative x86 assembly",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "reuse a prior compile for unchanged source (directory of cache entries)")
	rootCmd.PersistentFlags().BoolVar(&stats, "stats", false, "print compile statistics to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostics even on a terminal")
}

// colorEnabled reports whether diagnostics should be colorized: stdout
// must be a real terminal and the user must not have asked for --no-color.
func colorEnabled() bool {
	return !noColor && isatty.IsTerminal(os.Stdout.Fd())
}

func logf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] "+format+"\n", append([]interface{}{runID}, args...)...)
}
