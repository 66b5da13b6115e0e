package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/termrender/cmd/termrender"
	"github.com/arthur-debert/termrender/internal/version"
)

func main() {
	rootCmd := termrender.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TERMRENDER",
		Section: "1",
		Source:  "termrender " + version.Version,
		Manual:  "termrender manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
