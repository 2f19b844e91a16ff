package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/taskboard/cmd"
	"github.com/thenoetrevino/taskboard/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
