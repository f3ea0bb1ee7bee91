package store

import (
	"fmt"

	kerrors "github.com/sshkeep/sshkeep/internal/errors"
	"github.com/sshkeep/sshkeep/internal/prompt"
	"github.com/sshkeep/sshkeep/internal/utils"
)

// CollisionFn reports whether a candidate name would collide with something
// that already exists. Callers encode the mode-specific rules: entry
// directories for add, private/public files in the SSH directory for extract.
type CollisionFn func(name string) bool

// ResolveName turns a proposed name into a unique, non-empty one.
//
// An empty proposal gets one chance to be supplied interactively: the
// operator is first asked whether they want to provide a name (declining is
// an abort, not a failure), and an empty answer is rejected with
// ErrEmptyName. While the name collides, the operator may rename (the
// default) or abort. The resolver never touches the filesystem.
func ResolveName(proposed string, collides CollisionFn, p prompt.Prompter) (string, error) {
	name := proposed

	// A derived name that cannot serve as a directory name is treated like
	// no name at all.
	if name != "" && !utils.IsValidEntryName(name) {
		name = ""
	}

	if name == "" {
		ok, err := p.Confirm("No name could be derived. Provide one", true)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", kerrors.ErrAborted
		}
		name, err = p.Input("Name", "")
		if err != nil {
			return "", err
		}
		if name == "" {
			return "", kerrors.ErrEmptyName
		}
		if !utils.IsValidEntryName(name) {
			return "", fmt.Errorf("invalid name %q", name)
		}
	}

	for collides(name) {
		ok, err := p.Confirm(fmt.Sprintf("%q already exists. Rename", name), true)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", kerrors.ErrAborted
		}

		name, err = p.Input("New name", "")
		if err != nil {
			return "", err
		}
		if name == "" {
			return "", kerrors.ErrEmptyName
		}
		if !utils.IsValidEntryName(name) {
			return "", fmt.Errorf("invalid name %q", name)
		}
	}

	return name, nil
}
