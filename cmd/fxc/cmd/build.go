package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/iamZamil/minic/internal/cache"
	"github.com/iamZamil/minic/internal/compiler"
)

var watch bool

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Run the full six-stage pipeline and print the resulting assembly",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&watch, "watch", false, "recompile whenever the source file changes")
}

func runBuild(_ *cobra.Command, args []string) error {
	filename := args[0]

	if !watch {
		return buildOnce(filename)
	}

	if err := buildOnce(filename); err != nil {
		logf("build: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("build --watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("build --watch: %w", err)
	}

	logf("watching %s for changes (ctrl-c to stop)", filename)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logf("rebuilding %s", filename)
			if err := buildOnce(filename); err != nil {
				logf("build: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logf("watch error: %v", err)
		}
	}
}

func buildOnce(filename string) error {
	source, name, err := readSource([]string{filename})
	if err != nil {
		return err
	}

	var res compiler.CompilationResult
	var store *cache.Store
	cacheHit := false

	start := time.Now()
	if cacheDir != "" {
		store, err = cache.Open(cacheDir)
		if err != nil {
			return err
		}
		if entry, ok := store.Lookup(source); ok {
			cacheHit = true
			res = compiler.CompilationResult{
				IR:          entry.IR,
				OptimizedIR: entry.OptimizedIR,
				Assembly:    entry.Assembly,
				Errors:      entry.Errors,
			}
		}
	}
	if !cacheHit {
		res = compiler.Compile(source)
		if store != nil {
			if err := store.Put(source, res); err != nil {
				logf("cache: failed to persist entry: %v", err)
			}
		}
	}
	elapsed := time.Since(start)

	nErrs := len(res.Errors.Lexical) + len(res.Errors.Syntax) + len(res.Errors.Semantic)
	if nErrs > 0 {
		printErrors(os.Stderr, "lexical", source, res.Errors.Lexical, colorEnabled())
		printErrors(os.Stderr, "syntax", source, res.Errors.Syntax, colorEnabled())
		printErrors(os.Stderr, "semantic", source, res.Errors.Semantic, colorEnabled())
	} else {
		fmt.Print(res.Assembly)
	}

	if stats {
		logf("%s: %s raw instr, %s optimized instr, %s removed, %s",
			name,
			humanize.Comma(int64(len(res.IR))),
			humanize.Comma(int64(len(res.OptimizedIR))),
			humanize.Comma(int64(len(res.IR)-len(res.OptimizedIR))),
			humanizeDuration(elapsed, cacheHit))
	}

	if nErrs > 0 {
		return fmt.Errorf("%s: %d diagnostic(s)", name, nErrs)
	}
	return nil
}

func humanizeDuration(d time.Duration, cacheHit bool) string {
	if cacheHit {
		return "cache hit"
	}
	return d.Round(time.Microsecond).String()
}
