package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/garnix/cmd/garnix"
	"github.com/arthur-debert/garnix/internal/version"
)

func main() {
	rootCmd := garnix.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GARNIX",
		Section: "1",
		Source:  "garnix " + version.Version,
		Manual:  "garnix manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
