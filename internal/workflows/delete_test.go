package workflows

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	kerrors "github.com/sshkeep/sshkeep/internal/errors"
)

func TestDeleteConfirmed(t *testing.T) {
	te := newTestEnv(t)
	te.seedEntry(t, "work", "id_ed25519", true)
	te.script.Confirms = []bool{true}

	name, err := Delete(te.Env, "work")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if name != "work" {
		t.Errorf("name = %q, want work", name)
	}

	if _, err := os.Stat(filepath.Join(te.Settings.StoreRoot, "work")); !os.IsNotExist(err) {
		t.Error("entry directory still exists")
	}
	if !reflect.DeepEqual(te.versioner.messages, []string{"Removed SSH key work"}) {
		t.Errorf("commits = %v", te.versioner.messages)
	}
}

// Deletion defaults to "no".
func TestDeleteDeclined(t *testing.T) {
	te := newTestEnv(t)
	te.seedEntry(t, "work", "id_ed25519", false)
	te.script.Confirms = []bool{false}

	_, err := Delete(te.Env, "work")
	if !errors.Is(err, kerrors.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	if _, err := os.Stat(filepath.Join(te.Settings.StoreRoot, "work")); err != nil {
		t.Error("entry should still exist after declined delete")
	}
}

// An entry with missing blobs can still be deleted whole.
func TestDeleteIncompleteEntry(t *testing.T) {
	te := newTestEnv(t)
	dir := filepath.Join(te.Settings.StoreRoot, "broken")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	te.script.Confirms = []bool{true}

	if _, err := Delete(te.Env, "broken"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("broken entry still exists")
	}
}

func TestDeleteEmptyStore(t *testing.T) {
	te := newTestEnv(t)

	_, err := Delete(te.Env, "")
	if !errors.Is(err, kerrors.ErrEmptyStore) {
		t.Fatalf("err = %v, want ErrEmptyStore", err)
	}
}

func TestListIdempotent(t *testing.T) {
	te := newTestEnv(t)
	te.seedEntry(t, "work", "id_ed25519", false)
	te.seedEntry(t, "home", "id_rsa", false)

	first, err := List(te.Env)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := List(te.Env)
	if err != nil {
		t.Fatalf("List (second): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("listings differ: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(first, []string{"home", "work"}) {
		t.Errorf("listing = %v, want sorted names", first)
	}
}
