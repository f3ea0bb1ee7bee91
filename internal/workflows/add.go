package workflows

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sshkeep/sshkeep/internal/audit"
	kerrors "github.com/sshkeep/sshkeep/internal/errors"
	"github.com/sshkeep/sshkeep/internal/store"
)

// SourceKey is an unencrypted key pair in the user's SSH directory.
type SourceKey struct {
	// Base is the private key file name, e.g. id_ed25519.
	Base string

	// PrivatePath and PublicPath are the absolute file locations.
	PrivatePath string
	PublicPath  string

	// Comment is the trailing comment field of the public key line and the
	// suggested entry name.
	Comment string
}

// nonKeyFiles are well-known SSH directory files that are never private keys.
var nonKeyFiles = map[string]bool{
	"config":          true,
	"known_hosts":     true,
	"known_hosts.old": true,
	"authorized_keys": true,
	"agent.env":       true,
}

// sourceKeyPairs scans sshDir for private keys with a matching .pub file.
// incomplete counts candidates skipped for lacking their public half.
func sourceKeyPairs(sshDir string) (keys []SourceKey, incomplete int, err error) {
	dirents, err := os.ReadDir(sshDir)
	if os.IsNotExist(err) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read SSH directory %s: %w", sshDir, err)
	}

	for _, d := range dirents {
		base := d.Name()
		if d.IsDir() || nonKeyFiles[base] || strings.HasSuffix(base, ".pub") {
			continue
		}

		pubPath := filepath.Join(sshDir, base+".pub")
		if _, err := os.Stat(pubPath); err != nil {
			incomplete++
			continue
		}

		comment, err := publicKeyComment(pubPath)
		if err != nil {
			return nil, 0, err
		}

		keys = append(keys, SourceKey{
			Base:        base,
			PrivatePath: filepath.Join(sshDir, base),
			PublicPath:  pubPath,
			Comment:     comment,
		})
	}
	return keys, incomplete, nil
}

// publicKeyComment extracts the comment field from an authorized-keys style
// public key line: "<type> <base64> <comment...>". Keys without a comment
// yield the empty string.
func publicKeyComment(pubPath string) (string, error) {
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return "", fmt.Errorf("failed to read public key %s: %w", pubPath, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", nil
	}
	return strings.Join(fields[2:], " "), nil
}

// AddResult describes a completed add.
type AddResult struct {
	// Name is the final entry name after collision resolution.
	Name string

	// Dir is the created entry directory.
	Dir string

	// StoredPassphrase is true when a passphrase blob was written too.
	StoredPassphrase bool
}

// Add encrypts a key pair from the SSH directory into a new store entry.
//
// The operator picks the source pair, the entry name is derived from the
// public key comment and resolved for collisions, both halves are encrypted
// into a fresh entry directory, and the operator may optionally store an
// unlock passphrase alongside them. If either encryption fails the operation
// stops immediately; a partially written directory may remain.
func Add(env *Env) (*AddResult, error) {
	keys, incomplete, err := sourceKeyPairs(env.Settings.SSHDir)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		if incomplete > 0 {
			return nil, fmt.Errorf("%w: private key without a matching .pub file", kerrors.ErrSourceKeyIncomplete)
		}
		return nil, kerrors.ErrNoSourceKeys
	}

	bases := make([]string, len(keys))
	byBase := make(map[string]SourceKey, len(keys))
	for i, k := range keys {
		bases[i] = k.Base
		byBase[k.Base] = k
	}

	choice, err := env.Selector.Choose("SSH key file", bases)
	if err != nil {
		return nil, err
	}
	if choice == "" {
		return nil, kerrors.ErrAborted
	}
	src := byBase[choice]

	root := env.Settings.StoreRoot
	name, err := store.ResolveName(src.Comment, func(n string) bool {
		return store.Exists(root, n)
	}, env.Prompter)
	if err != nil {
		return nil, err
	}

	privData, err := os.ReadFile(src.PrivatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	pubData, err := os.ReadFile(src.PublicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create entry directory: %w", err)
	}

	if err := env.Encryptor.Encrypt(privData, filepath.Join(dir, src.Base+store.BlobExt)); err != nil {
		return nil, err
	}
	if err := env.Encryptor.Encrypt(pubData, filepath.Join(dir, src.Base+".pub"+store.BlobExt)); err != nil {
		return nil, err
	}

	result := &AddResult{Name: name, Dir: dir}

	ok, err := env.Prompter.Confirm(fmt.Sprintf("Store a passphrase for %s", name), false)
	if err != nil {
		return nil, err
	}
	if ok {
		pass, err := env.confirmedPassphrase()
		if err != nil {
			return nil, err
		}
		if len(pass) > 0 {
			if err := env.Encryptor.Encrypt(pass, filepath.Join(dir, store.PassphraseBlob)); err != nil {
				return nil, err
			}
			result.StoredPassphrase = true
		}
	}

	if err := env.Versioner.AddAndCommit("Added SSH key "+name, dir); err != nil {
		return nil, err
	}

	blobs := []string{src.Base + store.BlobExt, src.Base + ".pub" + store.BlobExt}
	if result.StoredPassphrase {
		blobs = append(blobs, store.PassphraseBlob)
	}
	env.Audit.Log(audit.Entry{Operation: "add", KeyName: name, Files: blobs})

	return result, nil
}
