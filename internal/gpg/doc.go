// Package gpg shells out to the gpg binary for the store's encrypt and
// decrypt operations, resolving recipients from pass-style .gpg-id files.
// Failures carry the underlying *exec.ExitError so callers can propagate
// gpg's exit code.
package gpg
