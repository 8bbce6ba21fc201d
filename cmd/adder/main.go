// Command adder adds signed 32-bit integers with overflow detection.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/adder/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
