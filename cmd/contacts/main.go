// Command contacts keeps a phone book in a plain text file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/contacts/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors have already been reported to the operator.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
