package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional on-disk configuration at
// $XDG_CONFIG_HOME/sshkeep/config.yaml. Environment variables take
// precedence over every field.
type FileConfig struct {
	// StoreDir overrides the full store root (not just the subdirectory).
	StoreDir string `yaml:"store_dir"`

	// SSHDir overrides the user SSH directory.
	SSHDir string `yaml:"ssh_dir"`

	// Clipboard selects the clipboard backend: wayland, x11 or auto.
	Clipboard string `yaml:"clipboard"`

	// Selector names the interactive selection program, e.g. fzf.
	Selector string `yaml:"selector"`
}

// loadConfigFile reads and parses the config file. A missing file is not an
// error; it returns (nil, nil).
func loadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *FileConfig) validate() error {
	switch c.Clipboard {
	case "", "auto", "wayland", "x11":
		return nil
	default:
		return fmt.Errorf("invalid clipboard backend %q (want wayland, x11 or auto)", c.Clipboard)
	}
}
