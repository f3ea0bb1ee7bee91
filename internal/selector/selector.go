package selector

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/manifoldco/promptui"
)

// Exec pipes the candidate names through an external fuzzy finder such as
// fzf. A cancelled selection (exit codes 1 and 130 for fzf) returns an empty
// name, not an error.
type Exec struct {
	Bin string
}

// Choose presents names and returns the chosen one, or "" when cancelled.
func (e Exec) Choose(label string, names []string) (string, error) {
	cmd := exec.Command(e.Bin, "--prompt", label+"> ")
	cmd.Stdin = strings.NewReader(strings.Join(names, "\n") + "\n")
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case 1, 130: // no match / interrupted
				return "", nil
			}
		}
		return "", fmt.Errorf("selector %s failed: %w", e.Bin, err)
	}

	return strings.TrimSpace(out.String()), nil
}

// Terminal is the built-in fallback selector using a promptui list.
type Terminal struct{}

// Choose presents names in a scrollable list, "" when cancelled.
func (Terminal) Choose(label string, names []string) (string, error) {
	p := promptui.Select{
		Label: label,
		Items: names,
		Size:  10,
	}

	_, choice, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", nil
		}
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return choice, nil
}

// Chooser is the common surface of the two selector backends.
type Chooser interface {
	Choose(label string, names []string) (string, error)
}

// New picks the configured external program when it is installed, otherwise
// the built-in terminal selector.
func New(program string) Chooser {
	if program == "" {
		program = "fzf"
	}
	if _, err := exec.LookPath(program); err == nil {
		return Exec{Bin: program}
	}
	return Terminal{}
}
