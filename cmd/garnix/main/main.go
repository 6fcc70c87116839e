package main

import (
	"os"

	"github.com/arthur-debert/garnix/cmd/garnix"
)

func main() {
	rootCmd := garnix.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !garnix.Reported(err) {
			garnix.RenderError(err)
		}
		os.Exit(1)
	}
}
