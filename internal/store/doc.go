// Package store models the on-disk layout of the encrypted SSH key store.
//
// The store root holds one directory per key entry:
//
//	<root>/<name>/<keyfile>.gpg      encrypted private key
//	<root>/<name>/<keyfile>.pub.gpg  encrypted public key
//	<root>/<name>/passphrase.gpg     encrypted unlock passphrase (optional)
//
// An entry is complete only when both key blobs exist; a missing private
// blob is fatal even when the public blob is present. The package also hosts
// the interactive naming resolver shared by add and extract.
package store
