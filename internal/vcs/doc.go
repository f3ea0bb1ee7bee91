// Package vcs records store mutations in the password store's git history,
// mirroring what pass does after every write. Stores without a git
// repository get a no-op versioner.
package vcs
