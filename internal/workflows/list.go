package workflows

import (
	"fmt"
	"slices"

	kerrors "github.com/sshkeep/sshkeep/internal/errors"
	"github.com/sshkeep/sshkeep/internal/store"
)

// List returns the sorted entry names. An empty store yields an empty slice,
// not an error; list is the one operation for which emptiness is benign.
func List(env *Env) ([]string, error) {
	return store.ListEntries(env.Settings.StoreRoot)
}

// chooseEntryName resolves the target entry name for a single-entry
// operation. An explicit name is validated against the store; otherwise the
// selector is consulted (skipped when only one entry exists). Selection is
// always against a fresh listing.
func (env *Env) chooseEntryName(name string) (string, error) {
	names, err := store.ListEntries(env.Settings.StoreRoot)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", kerrors.ErrEmptyStore
	}

	switch {
	case name != "":
		if !slices.Contains(names, name) {
			return "", fmt.Errorf("%w: %s", kerrors.ErrEntryNotFound, name)
		}
	case len(names) == 1:
		name = names[0]
	default:
		name, err = env.Selector.Choose("SSH key", names)
		if err != nil {
			return "", err
		}
		if name == "" {
			return "", kerrors.ErrAborted
		}
	}

	return name, nil
}

// chooseEntry resolves and opens the target entry, requiring its private
// blob to exist.
func (env *Env) chooseEntry(name string) (store.Entry, error) {
	name, err := env.chooseEntryName(name)
	if err != nil {
		return store.Entry{}, err
	}
	return store.OpenEntry(env.Settings.StoreRoot, name)
}
