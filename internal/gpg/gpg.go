package gpg

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CLI drives the gpg binary for encryption and decryption. Recipients are
// resolved per target directory from the password store's .gpg-id files.
type CLI struct {
	// Bin is the gpg binary, "gpg" by default.
	Bin string

	// StoreTop bounds the upward .gpg-id search, usually the password store
	// root's parent so a store-wide .gpg-id is found.
	StoreTop string
}

// New returns a CLI honoring the PASSWORD_STORE_GPG environment override.
func New(storeTop string) *CLI {
	bin := os.Getenv("PASSWORD_STORE_GPG")
	if bin == "" {
		bin = "gpg"
	}
	return &CLI{Bin: bin, StoreTop: storeTop}
}

// Encrypt encrypts plaintext for the recipients governing destPath's
// directory and writes the blob to destPath. The plaintext never touches a
// temporary file; it is piped to gpg's stdin.
func (c *CLI) Encrypt(plaintext []byte, destPath string) error {
	recipients, err := c.Recipients(filepath.Dir(destPath))
	if err != nil {
		return err
	}

	args := []string{"--encrypt", "--quiet", "--yes", "--batch", "--output", destPath}
	for _, r := range recipients {
		args = append(args, "--recipient", r)
	}

	cmd := exec.Command(c.Bin, args...)
	cmd.Stdin = bytes.NewReader(plaintext)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gpg encrypt failed for %s: %w", destPath, err)
	}
	return nil
}

// Decrypt decrypts the blob at path and returns the plaintext in memory.
func (c *CLI) Decrypt(path string) ([]byte, error) {
	cmd := exec.Command(c.Bin, "--decrypt", "--quiet", "--batch", path)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("gpg decrypt failed for %s: %w", path, err)
	}
	return out.Bytes(), nil
}

// Recipients resolves the key IDs governing dir by reading the nearest
// .gpg-id file, walking upward until StoreTop.
func (c *CLI) Recipients(dir string) ([]string, error) {
	idFile, err := findGPGID(dir, c.StoreTop)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(idFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", idFile, err)
	}

	var recipients []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			recipients = append(recipients, line)
		}
	}

	if len(recipients) == 0 {
		return nil, fmt.Errorf("no recipients listed in %s", idFile)
	}
	return recipients, nil
}

// findGPGID walks from dir up to top looking for a .gpg-id file.
func findGPGID(dir, top string) (string, error) {
	for {
		candidate := filepath.Join(dir, ".gpg-id")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if dir == top || dir == filepath.Dir(dir) {
			return "", fmt.Errorf("no .gpg-id found between %s and %s; is the password store initialized?", dir, top)
		}
		dir = filepath.Dir(dir)
	}
}
