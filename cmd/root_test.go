package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sshkeep/sshkeep/internal/configs"
	kerrors "github.com/sshkeep/sshkeep/internal/errors"
	logger "github.com/sshkeep/sshkeep/internal/logging"
	"github.com/sshkeep/sshkeep/internal/prompt/prompttest"
	"github.com/sshkeep/sshkeep/internal/workflows"
)

// testEncryptor mirrors blobs with a prefix so no gpg binary is needed.
type testEncryptor struct{}

const testEncPrefix = "ENC:"

func (testEncryptor) Encrypt(plaintext []byte, destPath string) error {
	return os.WriteFile(destPath, append([]byte(testEncPrefix), plaintext...), 0o600)
}

func (testEncryptor) Decrypt(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bytes.TrimPrefix(data, []byte(testEncPrefix)), nil
}

type testSelector struct{ choice string }

func (s testSelector) Choose(label string, names []string) (string, error) {
	return s.choice, nil
}

type nopClipboard struct{}

func (nopClipboard) Copy(data []byte) error { return nil }

type nopQR struct{}

func (nopQR) Render(data []byte, w io.Writer) error {
	_, err := fmt.Fprintln(w, "[qr]")
	return err
}

type nopVersioner struct{}

func (nopVersioner) AddAndCommit(message string, paths ...string) error { return nil }

type nopAgent struct{}

func (nopAgent) Add(pemBytes, passphrase []byte, comment string) error { return nil }

// setupCommandTest points the command layer at temp directories and scripted
// collaborators, returning the script for prompt answers.
func setupCommandTest(t *testing.T) *prompttest.Script {
	t.Helper()
	ResetGlobalState()

	settings := &configs.Settings{
		StoreRoot: filepath.Join(t.TempDir(), "store", "ssh"),
		SSHDir:    filepath.Join(t.TempDir(), ".ssh"),
		Clipboard: "auto",
	}
	script := &prompttest.Script{T: t}

	restore := SetEnvFactory(func() *workflows.Env {
		return &workflows.Env{
			Settings:  settings,
			Logger:    logger.Logger{},
			Out:       os.Stdout,
			Encryptor: testEncryptor{},
			Selector:  testSelector{},
			Clipboard: nopClipboard{},
			QR:        nopQR{},
			Versioner: nopVersioner{},
			Agent:     nopAgent{},
			Prompter:  script,
		}
	})
	t.Cleanup(func() {
		restore()
		RootCmd.SetArgs(nil)
		ResetGlobalState()
	})

	seedTestSettings = settings
	return script
}

// seedTestSettings is the settings object of the current test, for seeding.
var seedTestSettings *configs.Settings

func seedStoreEntry(t *testing.T, name, keyFile string, withPassphrase bool) {
	t.Helper()
	dir := filepath.Join(seedTestSettings.StoreRoot, name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		keyFile + ".gpg":     "PRIVATE KEY " + name,
		keyFile + ".pub.gpg": "ssh-ed25519 AAAA " + name + "@host",
	}
	if withPassphrase {
		files["passphrase.gpg"] = "secret-" + name
	}
	for f, content := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(testEncPrefix+content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func runCommand(args ...string) (string, error) {
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

func TestUnknownCommandShowsUsage(t *testing.T) {
	setupCommandTest(t)

	out, err := runCommand("frobnicate")
	if err != nil {
		t.Fatalf("unknown command should not fail, got %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("output = %q, want usage text", out)
	}
}

func TestNoCommandShowsUsage(t *testing.T) {
	setupCommandTest(t)

	out, err := runCommand()
	if err != nil {
		t.Fatalf("bare invocation should not fail, got %v", err)
	}
	if !strings.Contains(out, "Available Commands") {
		t.Errorf("output = %q, want command list", out)
	}
}

func TestCommandAliases(t *testing.T) {
	setupCommandTest(t)

	for alias, want := range map[string]string{
		"ls":     "list",
		"cat":    "show",
		"remove": "delete",
		"rm":     "delete",
	} {
		found, _, err := RootCmd.Find([]string{alias})
		if err != nil {
			t.Errorf("Find(%q): %v", alias, err)
			continue
		}
		if found.Name() != want {
			t.Errorf("alias %q resolves to %q, want %q", alias, found.Name(), want)
		}
	}
}

func TestListCommandEmptyStore(t *testing.T) {
	setupCommandTest(t)

	out, err := runCommand("list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "no SSH keys yet") {
		t.Errorf("output = %q, want empty-store notice", out)
	}
}

func TestListCommandPrintsNames(t *testing.T) {
	setupCommandTest(t)
	seedStoreEntry(t, "work", "id_ed25519", false)
	seedStoreEntry(t, "home", "id_rsa", false)

	out, err := runCommand("list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "home") || !strings.Contains(out, "work") {
		t.Errorf("output = %q, want both entry names", out)
	}
}

func TestShowCommandConflictingFlags(t *testing.T) {
	setupCommandTest(t)
	seedStoreEntry(t, "work", "id_ed25519", true)

	_, err := runCommand("show", "work", "--private", "--passphrase")
	if !errors.Is(err, kerrors.ErrPrivatePassphraseConflict) {
		t.Fatalf("err = %v, want ErrPrivatePassphraseConflict", err)
	}
}

func TestShowCommandEmptyStore(t *testing.T) {
	setupCommandTest(t)

	_, err := runCommand("show")
	if !errors.Is(err, kerrors.ErrEmptyStore) {
		t.Fatalf("err = %v, want ErrEmptyStore", err)
	}
}

func TestShowCommandPublic(t *testing.T) {
	setupCommandTest(t)
	seedStoreEntry(t, "work", "id_ed25519", false)

	out, err := runCommand("show", "work")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "ssh-ed25519 AAAA work@host") {
		t.Errorf("output = %q, want public key", out)
	}
}

func TestShowCommandMissingPassphrase(t *testing.T) {
	setupCommandTest(t)
	seedStoreEntry(t, "work", "id_ed25519", false)

	_, err := runCommand("show", "work", "--passphrase")
	if !errors.Is(err, kerrors.ErrNoPassphrase) {
		t.Fatalf("err = %v, want ErrNoPassphrase", err)
	}
}

func TestDeleteCommandDeclined(t *testing.T) {
	script := setupCommandTest(t)
	seedStoreEntry(t, "work", "id_ed25519", false)
	script.Confirms = []bool{false}

	_, err := runCommand("delete", "work")
	if !errors.Is(err, kerrors.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	if _, statErr := os.Stat(filepath.Join(seedTestSettings.StoreRoot, "work")); statErr != nil {
		t.Error("entry should survive a declined delete")
	}
}

func TestDeleteCommandConfirmed(t *testing.T) {
	script := setupCommandTest(t)
	seedStoreEntry(t, "work", "id_ed25519", false)
	script.Confirms = []bool{true}

	out, err := runCommand("delete", "work")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Removed SSH key") {
		t.Errorf("output = %q, want removal confirmation", out)
	}
}
