// Package audit provides audit trail logging for store operations.
//
// Every store-mutating or key-handling operation (add, edit, extract,
// delete, agent) is recorded in a log under the store root. The git history
// records what changed; the audit log additionally records operations that
// leave the store untouched, like extract and agent loads.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<store root>/.sshkeep/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name
//   - Operation-specific details (entry name, files, action)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
