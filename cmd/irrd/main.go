package main

import (
	"fmt"
	"os"

	"github.com/mvonwaldner/irr/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "irrd:", err)
		os.Exit(1)
	}
}
