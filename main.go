package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sshkeep/sshkeep/cmd"
	kerrors "github.com/sshkeep/sshkeep/internal/errors"
	"github.com/sshkeep/sshkeep/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cmd.RootCmd.Execute()
	if err == nil {
		return 0
	}

	// An operator declining a prompt is a benign no-op, not a failure.
	if errors.Is(err, kerrors.ErrAborted) {
		return 0
	}

	// A failing collaborator keeps its own exit code.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		return exitErr.ExitCode()
	}

	fmt.Fprintf(os.Stderr, "%s %v.\n", ui.Error.Sprint("Error:"), err)
	return 1
}
