// kbreg - Knowledge-Base Registry Tooling
// Source: https://github.com/agentchanti/kbreg

package main

import (
	"fmt"
	"os"

	"github.com/agentchanti/kbreg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if msg := cli.ErrorMessage(err); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}
