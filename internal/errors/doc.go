// Package errors defines the sentinel errors shared across sshkeep.
//
// Callers match them with errors.Is. ErrAborted is special: it marks an
// operator-driven cancellation and the process exits 0 when it reaches main.
package errors
