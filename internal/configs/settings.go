package configs

import (
	"log"
	"os"
	"path/filepath"
)

// Settings holds the resolved runtime configuration for a single invocation.
type Settings struct {
	// StoreRoot is the directory holding one subdirectory per key entry,
	// e.g. ~/.password-store/ssh.
	StoreRoot string

	// SSHDir is the user's unencrypted SSH directory, e.g. ~/.ssh.
	SSHDir string

	// Clipboard selects the clipboard backend: "wayland", "x11" or "auto".
	Clipboard string

	// Selector is the interactive selection program, empty for the built-in
	// terminal selector.
	Selector string

	// ConfigPath is where the optional config file was looked up.
	ConfigPath string
}

// SSHKeepSettings is the process-wide settings object. Tests replace it with
// a Settings pointing at temp directories.
var SSHKeepSettings *Settings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	SSHKeepSettings = resolveSettings(homeDir, configDir, os.Getenv)
}

// resolveSettings builds Settings from the environment. Split out of init so
// tests can exercise the precedence rules directly.
func resolveSettings(homeDir, configDir string, getenv func(string) string) *Settings {
	// The SSH subtree of the password store. PASS_SSH_DIR overrides the
	// subdirectory name, matching the pass extension convention.
	sshSubdir := getenv("PASS_SSH_DIR")
	if sshSubdir == "" {
		sshSubdir = "ssh"
	}

	s := &Settings{
		StoreRoot:  filepath.Join(homeDir, ".password-store", sshSubdir),
		SSHDir:     filepath.Join(homeDir, ".ssh"),
		Clipboard:  "auto",
		Selector:   "",
		ConfigPath: filepath.Join(configDir, "sshkeep", "config.yaml"),
	}

	// File config sits below env overrides.
	if cfg, err := loadConfigFile(s.ConfigPath); err == nil && cfg != nil {
		s.applyFile(cfg)
	}

	if v := getenv("PASSWORD_STORE_DIR"); v != "" {
		s.StoreRoot = filepath.Join(v, sshSubdir)
	}
	if v := getenv("SSH_DIR"); v != "" {
		s.SSHDir = v
	}
	if v := getenv("SSHKEEP_CLIPBOARD"); v != "" {
		s.Clipboard = v
	}
	if v := getenv("SSHKEEP_SELECTOR"); v != "" {
		s.Selector = v
	}

	return s
}

// applyFile merges non-empty file values into the settings.
func (s *Settings) applyFile(cfg *FileConfig) {
	if cfg.StoreDir != "" {
		s.StoreRoot = cfg.StoreDir
	}
	if cfg.SSHDir != "" {
		s.SSHDir = cfg.SSHDir
	}
	if cfg.Clipboard != "" {
		s.Clipboard = cfg.Clipboard
	}
	if cfg.Selector != "" {
		s.Selector = cfg.Selector
	}
}
