package workflows

import (
	"fmt"
	"os"

	"github.com/sshkeep/sshkeep/internal/audit"
	kerrors "github.com/sshkeep/sshkeep/internal/errors"
)

// EditResult describes the passphrase transition an edit performed.
type EditResult struct {
	// Entry is the affected entry name.
	Entry string

	// State is the passphrase state after the edit.
	State PassphraseState

	// Action is "added", "updated", "removed" or "unchanged".
	Action string
}

// Edit runs the passphrase lifecycle on one entry.
//
// The operator first confirms the add/overwrite intent (declining aborts
// with no change). A confirmed non-empty passphrase replaces any stored
// blob. A confirmed empty passphrase removes an existing blob only after an
// explicit removal confirmation that defaults to no; with no stored blob it
// is a no-op. Every on-disk change is committed.
func Edit(env *Env, name string) (*EditResult, error) {
	e, err := env.chooseEntry(name)
	if err != nil {
		return nil, err
	}

	state := passphraseStateOf(e)
	verb := "add"
	if state == HasPassphrase {
		verb = "overwrite"
	}

	ok, err := env.Prompter.Confirm(fmt.Sprintf("Do you want to %s the passphrase for %s", verb, e.Name), true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, kerrors.ErrAborted
	}

	pass, err := env.confirmedPassphrase()
	if err != nil {
		return nil, err
	}

	if len(pass) > 0 {
		action := "added"
		message := "Added passphrase for " + e.Name
		if state == HasPassphrase {
			// Old blob is replaced, not appended to.
			if err := os.Remove(e.PassphrasePath()); err != nil {
				return nil, fmt.Errorf("failed to remove old passphrase blob: %w", err)
			}
			action = "updated"
			message = "Updated passphrase for " + e.Name
		}

		if err := env.Encryptor.Encrypt(pass, e.PassphrasePath()); err != nil {
			return nil, err
		}
		if err := env.Versioner.AddAndCommit(message, e.PassphrasePath()); err != nil {
			return nil, err
		}
		env.Audit.Log(audit.Entry{Operation: "edit", KeyName: e.Name, Action: action})
		return &EditResult{Entry: e.Name, State: HasPassphrase, Action: action}, nil
	}

	if state == NoPassphrase {
		// Nothing stored, nothing to write.
		return &EditResult{Entry: e.Name, State: NoPassphrase, Action: "unchanged"}, nil
	}

	ok, err = env.Prompter.Confirm(fmt.Sprintf("Remove the stored passphrase for %s", e.Name), false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &EditResult{Entry: e.Name, State: HasPassphrase, Action: "unchanged"}, nil
	}

	if err := os.Remove(e.PassphrasePath()); err != nil {
		return nil, fmt.Errorf("failed to remove passphrase blob: %w", err)
	}
	if err := env.Versioner.AddAndCommit("Removed passphrase for "+e.Name, e.PassphrasePath()); err != nil {
		return nil, err
	}
	env.Audit.Log(audit.Entry{Operation: "edit", KeyName: e.Name, Action: "removed"})
	return &EditResult{Entry: e.Name, State: NoPassphrase, Action: "removed"}, nil
}
