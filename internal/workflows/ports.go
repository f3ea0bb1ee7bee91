package workflows

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sshkeep/sshkeep/internal/audit"
	"github.com/sshkeep/sshkeep/internal/clipboard"
	"github.com/sshkeep/sshkeep/internal/configs"
	"github.com/sshkeep/sshkeep/internal/gpg"
	logger "github.com/sshkeep/sshkeep/internal/logging"
	"github.com/sshkeep/sshkeep/internal/prompt"
	"github.com/sshkeep/sshkeep/internal/qrterm"
	"github.com/sshkeep/sshkeep/internal/selector"
	"github.com/sshkeep/sshkeep/internal/sshagent"
	"github.com/sshkeep/sshkeep/internal/vcs"
)

// Encryptor produces and consumes opaque encrypted blobs. Recipients are
// resolved from the destination directory, never passed by the caller.
type Encryptor interface {
	Encrypt(plaintext []byte, destPath string) error
	Decrypt(path string) ([]byte, error)
}

// Selector maps a list of names to one interactive choice. An empty result
// means the operator cancelled.
type Selector interface {
	Choose(label string, names []string) (string, error)
}

// Clipboard copies bytes to the system clipboard.
type Clipboard interface {
	Copy(data []byte) error
}

// QRRenderer renders bytes as a terminal-displayable QR code.
type QRRenderer interface {
	Render(data []byte, w io.Writer) error
}

// Versioner records store mutations in version control. Implementations are
// no-ops when the store is not under version control.
type Versioner interface {
	AddAndCommit(message string, paths ...string) error
}

// KeyAgent adds a decrypted private key to a running ssh-agent. passphrase
// may be nil for unencrypted keys.
type KeyAgent interface {
	Add(pemBytes, passphrase []byte, comment string) error
}

// Env bundles the collaborators every workflow needs. Commands build it with
// DefaultEnv; tests assemble one from fakes.
type Env struct {
	Settings *configs.Settings
	Logger   logger.Logger
	Out      io.Writer
	Audit    audit.Trail

	Encryptor Encryptor
	Selector  Selector
	Clipboard Clipboard
	QR        QRRenderer
	Versioner Versioner
	Agent     KeyAgent
	Prompter  prompt.Prompter
}

// DefaultEnv wires the production collaborators: gpg, the configured
// selector and clipboard backends, terminal QR rendering, git, and the
// ssh-agent socket.
func DefaultEnv(settings *configs.Settings, log logger.Logger) *Env {
	return &Env{
		Settings:  settings,
		Logger:    log,
		Out:       os.Stdout,
		Audit:     audit.Trail{Root: settings.StoreRoot},
		Encryptor: gpg.New(filepath.Dir(settings.StoreRoot)),
		Selector:  selector.New(settings.Selector),
		Clipboard: clipboard.New(settings.Clipboard),
		QR:        qrterm.Renderer{},
		Versioner: vcs.New(settings.StoreRoot),
		Agent:     sshagent.Loader{},
		Prompter:  prompt.Terminal{},
	}
}
