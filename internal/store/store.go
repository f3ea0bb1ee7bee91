package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/sshkeep/sshkeep/internal/errors"
)

const (
	// BlobExt is the suffix the encryptor gives every blob in the store.
	BlobExt = ".gpg"

	// PassphraseBlob is the per-entry passphrase file name.
	PassphraseBlob = "passphrase" + BlobExt
)

// Entry is one named key bundle in the store: a directory holding an
// encrypted private key, an encrypted public key and an optional passphrase.
type Entry struct {
	// Name is the entry's directory name.
	Name string

	// Dir is the absolute path of the entry directory.
	Dir string

	// KeyFile is the base name of the key material inside the directory,
	// without the blob extension. Empty when no private blob was found.
	KeyFile string
}

// ListEntries returns the sorted names of all entries under root. An absent
// root counts as an empty store, not an error. The listing is recomputed on
// every call and never cached.
func ListEntries(root string) ([]string, error) {
	dirents, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store root %s: %w", root, err)
	}

	var names []string
	for _, d := range dirents {
		// Dot directories (.git, .sshkeep) are store plumbing, not entries.
		if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
			names = append(names, d.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether an entry with the given name is present.
func Exists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && info.IsDir()
}

// OpenEntry locates the key material inside the named entry directory.
// The private blob is the one *.gpg file that is neither a *.pub.gpg nor the
// passphrase blob; its base name names the key files on extraction.
//
// Returns ErrEntryNotFound when the directory does not exist and
// ErrKeyFilesMissing when the private blob is absent, even if a public blob
// is present.
func OpenEntry(root, name string) (Entry, error) {
	dir := filepath.Join(root, name)
	dirents, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return Entry{}, fmt.Errorf("%w: %s", kerrors.ErrEntryNotFound, name)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read entry %s: %w", name, err)
	}

	e := Entry{Name: name, Dir: dir}
	for _, d := range dirents {
		base := d.Name()
		if d.IsDir() || !strings.HasSuffix(base, BlobExt) {
			continue
		}
		if base == PassphraseBlob || strings.HasSuffix(base, ".pub"+BlobExt) {
			continue
		}
		e.KeyFile = strings.TrimSuffix(base, BlobExt)
		break
	}

	if e.KeyFile == "" {
		return Entry{}, fmt.Errorf("%w for %s", kerrors.ErrKeyFilesMissing, name)
	}
	return e, nil
}

// PrivatePath is the encrypted private key blob.
func (e Entry) PrivatePath() string {
	return filepath.Join(e.Dir, e.KeyFile+BlobExt)
}

// PublicPath is the encrypted public key blob.
func (e Entry) PublicPath() string {
	return filepath.Join(e.Dir, e.KeyFile+".pub"+BlobExt)
}

// PassphrasePath is the encrypted passphrase blob, which may not exist.
func (e Entry) PassphrasePath() string {
	return filepath.Join(e.Dir, PassphraseBlob)
}

// HasPassphrase reports whether a passphrase blob is stored for the entry.
func (e Entry) HasPassphrase() bool {
	_, err := os.Stat(e.PassphrasePath())
	return err == nil
}

// CheckComplete verifies both key blobs exist.
func (e Entry) CheckComplete() error {
	for _, p := range []string{e.PrivatePath(), e.PublicPath()} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("%w for %s", kerrors.ErrKeyFilesMissing, e.Name)
		}
	}
	return nil
}
