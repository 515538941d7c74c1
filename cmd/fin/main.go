package main

import (
	"fmt"
	"os"

	"github.com/jstrait/fileinspector/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(os.Stderr, err))
		os.Exit(1)
	}
}
