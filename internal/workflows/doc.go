// Package workflows implements the store operations behind each sshkeep
// command: add, list, show, edit, extract, delete and agent.
//
// Every workflow runs strictly top-down: resolve the target entry against a
// fresh store listing, perform the filesystem or encryptor work, then record
// the change with the versioner and the audit trail. External collaborators
// (encryption,
// selection, clipboard, QR, version control, ssh-agent) enter through the
// narrow port interfaces on Env, so tests drive the workflows with in-memory
// fakes.
package workflows
