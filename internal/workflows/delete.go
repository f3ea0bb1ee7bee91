package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sshkeep/sshkeep/internal/audit"
	kerrors "github.com/sshkeep/sshkeep/internal/errors"
)

// Delete removes an entire entry after an explicit confirmation that
// defaults to no. The directory is removed as a unit; there is no partial
// delete, and an incomplete entry (missing blobs) can still be deleted.
// Returns the deleted entry name.
func Delete(env *Env, name string) (string, error) {
	name, err := env.chooseEntryName(name)
	if err != nil {
		return "", err
	}

	ok, err := env.Prompter.Confirm(fmt.Sprintf("Delete SSH key %s from the store", name), false)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", kerrors.ErrAborted
	}

	dir := filepath.Join(env.Settings.StoreRoot, name)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("failed to remove entry %s: %w", name, err)
	}

	if err := env.Versioner.AddAndCommit("Removed SSH key "+name, dir); err != nil {
		return "", err
	}
	env.Audit.Log(audit.Entry{Operation: "delete", KeyName: name})
	return name, nil
}
