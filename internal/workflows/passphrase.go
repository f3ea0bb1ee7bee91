package workflows

import (
	"bytes"

	"github.com/sshkeep/sshkeep/internal/store"
)

// PassphraseState is the per-entry passphrase lifecycle state.
type PassphraseState int

const (
	// NoPassphrase means the entry has no stored passphrase blob.
	NoPassphrase PassphraseState = iota

	// HasPassphrase means a passphrase blob is stored alongside the key.
	HasPassphrase
)

func (s PassphraseState) String() string {
	if s == HasPassphrase {
		return "HasPassphrase"
	}
	return "NoPassphrase"
}

// passphraseStateOf derives the current state from the entry directory.
func passphraseStateOf(e store.Entry) PassphraseState {
	if e.HasPassphrase() {
		return HasPassphrase
	}
	return NoPassphrase
}

// confirmedPassphrase reads a passphrase twice and repeats the pair until
// both entries match. The matched value may be empty; the caller decides
// what emptiness means in its state.
func (env *Env) confirmedPassphrase() ([]byte, error) {
	for {
		first, err := env.Prompter.ReadSecret("Enter passphrase")
		if err != nil {
			return nil, err
		}
		second, err := env.Prompter.ReadSecret("Retype passphrase")
		if err != nil {
			return nil, err
		}
		if bytes.Equal(first, second) {
			return first, nil
		}
		env.Logger.WarnfUser("Passphrases do not match, try again")
	}
}
