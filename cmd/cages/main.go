// Command cages lists the digit combinations that fill Killer Sudoku cages.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/cages/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
