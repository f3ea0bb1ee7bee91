package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
)

// Copier copies bytes to the system clipboard.
type Copier interface {
	Copy(data []byte) error
}

// execCopier pipes data to an external clipboard tool such as wl-copy or
// xclip.
type execCopier struct {
	bin  string
	args []string
}

func (c execCopier) Copy(data []byte) error {
	cmd := exec.Command(c.bin, c.args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", c.bin, err)
	}
	return nil
}

// libCopier uses the atotto/clipboard library, which picks a platform
// mechanism on its own.
type libCopier struct{}

func (libCopier) Copy(data []byte) error {
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// New selects a backend. "wayland" and "x11" force the matching tool;
// "auto" (and anything else) defers to the library's own detection.
func New(backend string) Copier {
	switch backend {
	case "wayland":
		return execCopier{bin: "wl-copy"}
	case "x11":
		return execCopier{bin: "xclip", args: []string{"-selection", "clipboard"}}
	default:
		return libCopier{}
	}
}
