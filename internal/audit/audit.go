package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // Operation name: add, edit, extract, delete, agent.

	// Optional fields depending on operation.
	KeyName string   `json:"key,omitempty"`    // Affected store entry.
	Files   []string `json:"files,omitempty"`  // Blobs written or extracted.
	Action  string   `json:"action,omitempty"` // For edit: added/updated/removed.
}

// Trail appends operation records under a store root.
type Trail struct {
	// Root is the store root. An empty root disables logging.
	Root string
}

// Log appends an entry to the audit log.
// If logging fails, the entry is dropped. Operations should not fail just
// because audit logging failed.
func (t Trail) Log(entry Entry) {
	logPath := t.Path()
	if logPath == "" {
		return
	}

	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return
	}

	// Open file for appending (create if doesn't exist).
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// Write entry with newline.
	_, _ = f.Write(append(data, '\n'))
}

// Path returns the path to the audit log file.
// Returns empty string when the trail has no root.
func (t Trail) Path() string {
	if t.Root == "" {
		return ""
	}
	return filepath.Join(t.Root, ".sshkeep", "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func (t Trail) ReadEntries() ([]Entry, error) {
	logPath := t.Path()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
