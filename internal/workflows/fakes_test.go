package workflows

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sshkeep/sshkeep/internal/audit"
	"github.com/sshkeep/sshkeep/internal/configs"
	logger "github.com/sshkeep/sshkeep/internal/logging"
	"github.com/sshkeep/sshkeep/internal/prompt/prompttest"
)

// fakeEncryptor "encrypts" by prefixing plaintext, so tests can assert on
// blob contents without a gpg binary.
type fakeEncryptor struct {
	encryptErr error
}

const encPrefix = "ENC:"

func (f fakeEncryptor) Encrypt(plaintext []byte, destPath string) error {
	if f.encryptErr != nil {
		return f.encryptErr
	}
	return os.WriteFile(destPath, append([]byte(encPrefix), plaintext...), 0o600)
}

func (f fakeEncryptor) Decrypt(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, []byte(encPrefix)) {
		return nil, fmt.Errorf("blob %s is not encrypted", path)
	}
	return bytes.TrimPrefix(data, []byte(encPrefix)), nil
}

// fakeSelector returns canned choices in order.
type fakeSelector struct {
	choices []string
	seen    [][]string
}

func (f *fakeSelector) Choose(label string, names []string) (string, error) {
	f.seen = append(f.seen, names)
	if len(f.choices) == 0 {
		return "", nil
	}
	c := f.choices[0]
	f.choices = f.choices[1:]
	return c, nil
}

type fakeClipboard struct {
	copied [][]byte
}

func (f *fakeClipboard) Copy(data []byte) error {
	f.copied = append(f.copied, data)
	return nil
}

type fakeQR struct {
	rendered [][]byte
}

func (f *fakeQR) Render(data []byte, w io.Writer) error {
	f.rendered = append(f.rendered, data)
	_, err := fmt.Fprintf(w, "[QR:%d bytes]\n", len(data))
	return err
}

type fakeVersioner struct {
	messages []string
	paths    [][]string
}

func (f *fakeVersioner) AddAndCommit(message string, paths ...string) error {
	f.messages = append(f.messages, message)
	f.paths = append(f.paths, paths)
	return nil
}

type addedKey struct {
	pem        []byte
	passphrase []byte
	comment    string
}

type fakeAgent struct {
	added []addedKey
	// errs are returned for successive Add calls before recording starts
	// succeeding, to exercise the passphrase retry path.
	errs []error
}

func (f *fakeAgent) Add(pemBytes, passphrase []byte, comment string) error {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return err
		}
	}
	f.added = append(f.added, addedKey{pem: pemBytes, passphrase: passphrase, comment: comment})
	return nil
}

// testEnv bundles the fakes with the Env under test.
type testEnv struct {
	*Env
	selector  *fakeSelector
	clipboard *fakeClipboard
	qr        *fakeQR
	versioner *fakeVersioner
	agent     *fakeAgent
	script    *prompttest.Script
	out       *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{
		selector:  &fakeSelector{},
		clipboard: &fakeClipboard{},
		qr:        &fakeQR{},
		versioner: &fakeVersioner{},
		agent:     &fakeAgent{},
		script:    &prompttest.Script{T: t},
		out:       &bytes.Buffer{},
	}
	storeRoot := filepath.Join(t.TempDir(), "store", "ssh")
	te.Env = &Env{
		Settings: &configs.Settings{
			StoreRoot: storeRoot,
			SSHDir:    filepath.Join(t.TempDir(), ".ssh"),
			Clipboard: "auto",
		},
		Logger:    logger.Logger{},
		Out:       te.out,
		Audit:     audit.Trail{Root: storeRoot},
		Encryptor: fakeEncryptor{},
		Selector:  te.selector,
		Clipboard: te.clipboard,
		QR:        te.qr,
		Versioner: te.versioner,
		Agent:     te.agent,
		Prompter:  te.script,
	}
	return te
}

// seedEntry writes a fake-encrypted entry into the store.
func (te *testEnv) seedEntry(t *testing.T, name, keyFile string, withPassphrase bool) {
	t.Helper()
	dir := filepath.Join(te.Settings.StoreRoot, name)
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
		if err := os.WriteFile(filepath.Join(dir, f), []byte(encPrefix+content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// seedSourceKey writes an unencrypted key pair into the SSH directory.
func (te *testEnv) seedSourceKey(t *testing.T, base, comment string) {
	t.Helper()
	if err := os.MkdirAll(te.Settings.SSHDir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(te.Settings.SSHDir, base), []byte("PRIVATE "+base), 0o600); err != nil {
		t.Fatal(err)
	}
	pubLine := "ssh-ed25519 AAAAC3Nza"
	if comment != "" {
		pubLine += " " + comment
	}
	if err := os.WriteFile(filepath.Join(te.Settings.SSHDir, base+".pub"), []byte(pubLine+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

var errBoom = errors.New("boom")
