package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/sinsoku/phony/internal/cli"
	"github.com/sinsoku/phony/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PHONY",
		Section: "1",
		Source:  "phony " + version.Version,
		Manual:  "phony manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
