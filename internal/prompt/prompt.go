package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// Prompter asks the operator questions. All methods block on terminal input.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer. def is returned
	// on a bare Enter.
	Confirm(question string, def bool) (bool, error)

	// Input asks for a line of text. def is returned on a bare Enter.
	Input(label, def string) (string, error)

	// ReadSecret reads a line without echoing it.
	ReadSecret(label string) ([]byte, error)
}

// Terminal is the interactive Prompter used outside of tests.
type Terminal struct{}

var _ Prompter = Terminal{}

// Confirm asks a [y/N] or [Y/n] style question via promptui.
func (Terminal) Confirm(question string, def bool) (bool, error) {
	p := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	if def {
		p.Default = "y"
	}

	result, err := p.Run()
	if err != nil {
		// promptui reports a declined confirm as ErrAbort; a bare Enter
		// carries the default through as the result string.
		if errors.Is(err, promptui.ErrAbort) {
			if strings.TrimSpace(result) == "" {
				return def, nil
			}
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return true, nil
}

func (Terminal) Input(label, def string) (string, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: def,
	}
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// ReadSecret prompts without echoing input. Returns an error if stdin is not
// a terminal so that secrets are never read from a pipe by accident.
func (Terminal) ReadSecret(label string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read secret: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, label+": ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}

	return secret, nil
}
