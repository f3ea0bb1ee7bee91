package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sshkeep/sshkeep/internal/audit"
	"github.com/sshkeep/sshkeep/internal/store"
)

// ExtractOptions selects which halves of the key to write back.
type ExtractOptions struct {
	// Name targets a specific entry; empty triggers interactive selection.
	Name string

	// Private and Public toggle which files are written. With neither set,
	// both are written.
	Private bool
	Public  bool
}

// ExtractResult lists what was written where.
type ExtractResult struct {
	// Entry is the source entry name.
	Entry string

	// Written are the files created in the SSH directory.
	Written []string
}

// Extract decrypts an entry back into the SSH directory.
//
// A name collides when any file the active mode would write already exists,
// so a public-only extract is not blocked by an existing private key of the
// same name. Collisions resolve interactively; the chosen name names both
// written files. The private key is written 0600, the public key 0644.
func Extract(env *Env, opts ExtractOptions) (*ExtractResult, error) {
	e, err := env.chooseEntry(opts.Name)
	if err != nil {
		return nil, err
	}
	if err := e.CheckComplete(); err != nil {
		return nil, err
	}

	doPriv, doPub := opts.Private, opts.Public
	if !doPriv && !doPub {
		// Neither flag given: write both halves. An earlier revision of the
		// shell implementation had an inverted presence check here that made
		// this branch unreachable; the intended default is restored.
		doPriv, doPub = true, true
	}

	sshDir := env.Settings.SSHDir
	collides := func(n string) bool {
		if doPriv {
			if _, err := os.Stat(filepath.Join(sshDir, n)); err == nil {
				return true
			}
		}
		if doPub {
			if _, err := os.Stat(filepath.Join(sshDir, n+".pub")); err == nil {
				return true
			}
		}
		return false
	}

	name, err := store.ResolveName(e.KeyFile, collides, env.Prompter)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(sshDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	result := &ExtractResult{Entry: e.Name}

	if doPriv {
		data, err := env.Encryptor.Decrypt(e.PrivatePath())
		if err != nil {
			return nil, err
		}
		dest := filepath.Join(sshDir, name)
		if err := os.WriteFile(dest, data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write private key: %w", err)
		}
		result.Written = append(result.Written, dest)
	}

	if doPub {
		data, err := env.Encryptor.Decrypt(e.PublicPath())
		if err != nil {
			return nil, err
		}
		dest := filepath.Join(sshDir, name+".pub")
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write public key: %w", err)
		}
		result.Written = append(result.Written, dest)
	}

	env.Audit.Log(audit.Entry{Operation: "extract", KeyName: e.Name, Files: result.Written})

	return result, nil
}
