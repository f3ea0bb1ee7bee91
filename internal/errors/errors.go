package errors

import "errors"

// Store errors indicate missing or incomplete key material in the store.
var (
	// ErrEmptyStore indicates the store contains no key entries at all.
	ErrEmptyStore = errors.New("no SSH key in password store")

	// ErrEntryNotFound indicates the named entry does not exist in the store.
	ErrEntryNotFound = errors.New("SSH key not found in password store")

	// ErrKeyFilesMissing indicates an entry is missing its private key blob.
	ErrKeyFilesMissing = errors.New("key files missing")

	// ErrNoPassphrase indicates an entry has no stored passphrase blob.
	ErrNoPassphrase = errors.New("no passphrase found")
)

// Naming errors indicate a usable entry name could not be established.
var (
	// ErrEmptyName indicates the operator supplied an empty entry name.
	ErrEmptyName = errors.New("name cannot be empty")
)

// Operator errors indicate the interactive flow ended without a result.
var (
	// ErrAborted indicates the operator declined a prompt or cancelled a
	// selection. It maps to exit code 0, not a failure.
	ErrAborted = errors.New("aborted")
)

// Usage errors indicate an invalid flag combination.
var (
	// ErrPrivatePassphraseConflict indicates --private and --passphrase were
	// requested together.
	ErrPrivatePassphraseConflict = errors.New("--private and --passphrase are mutually exclusive")
)

// Source errors indicate issues with unencrypted key files in the SSH directory.
var (
	// ErrNoSourceKeys indicates no key pairs were found in the SSH directory.
	ErrNoSourceKeys = errors.New("no SSH key pairs found in SSH directory")

	// ErrSourceKeyIncomplete indicates a source key is missing its private or
	// public half.
	ErrSourceKeyIncomplete = errors.New("SSH key pair is incomplete")
)

// Agent errors indicate issues talking to the running ssh-agent.
var (
	// ErrNoAgent indicates no ssh-agent socket could be reached.
	ErrNoAgent = errors.New("no running ssh-agent found")
)
