// Command confdump reads a tiling-window-manager config file and
// prints its parse diagnostics as YAML. File I/O lives here, not in
// the core package, which stays agnostic to where its input comes from.
package main

import (
	"fmt"
	"os"

	"github.com/juju/loggo"
	"github.com/tilecfg/confparse"
	"github.com/tilecfg/confparse/internal/logctx"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s CONFIG-FILE\n", os.Args[0])
		os.Exit(2)
	}

	if lvl := os.Getenv("CONFPARSE_LOG"); lvl != "" {
		if level, ok := loggo.ParseLevel(lvl); ok {
			logctx.SetLevel(level)
		}
	}

	path := os.Args[1]
	input, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "confdump: %v\n", err)
		os.Exit(1)
	}

	grammar := confparse.DefaultGrammar()
	out := confparse.NewConfigOutput()
	ctx := confparse.NewParseContext(path)
	ctx.Out = out

	result, err := confparse.Parse(input, ctx, grammar, confparse.DefaultHandlers())
	if err != nil {
		fmt.Fprintf(os.Stderr, "confdump: fatal: %v\n", err)
		os.Exit(1)
	}

	doc, err := result.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "confdump: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(doc)

	if ctx.HasErrors {
		os.Exit(1)
	}
}
