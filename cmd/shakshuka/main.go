package main

import (
	"fmt"
	"os"

	app "github.com/admiralsuez/shakshuka/internal"
	"github.com/admiralsuez/shakshuka/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	basePath := app.ResolveBasePath()

	a, err := app.NewApp(basePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing shakshuka: %v\n", err)
		os.Exit(1)
	}

	runErr := cli.Execute()

	// Final flush attempt before exit; a failed debounced write earlier is
	// recovered here.
	if err := a.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flushing state: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
