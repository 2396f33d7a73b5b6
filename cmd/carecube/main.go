package main

import (
	"fmt"
	"os"

	"github.com/roach88/carecube/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "carecube:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
