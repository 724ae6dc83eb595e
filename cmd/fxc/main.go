// Command fxc is the compiler driver: it reads a source file, runs it
// through compiler.Compile, and prints whichever artifact the invoked
// subcommand asks for. None of what it does ever feeds back into the
// compiler itself -- caching, watching, and colorized output are all
// presentation-layer concerns bolted onto a pure six-stage pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/iamZamil/minic/cmd/fxc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
