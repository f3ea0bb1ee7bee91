package workflows

import (
	"os"

	kerrors "github.com/sshkeep/sshkeep/internal/errors"
)

// ShowOptions selects what Show emits and where.
type ShowOptions struct {
	// Name targets a specific entry; empty triggers interactive selection.
	Name string

	// Private emits the private key instead of the public key.
	Private bool

	// Passphrase emits the stored passphrase. Mutually exclusive with
	// Private.
	Passphrase bool

	// Copy mirrors the output to the clipboard.
	Copy bool

	// QR renders the output as a QR code.
	QR bool

	// Print forces plain stdout emission even when Copy or QR already
	// consumed the output.
	Print bool
}

// Show decrypts one blob of one entry and emits it. With neither Copy nor QR
// the blob goes to stdout; with either, stdout emission additionally
// requires Print.
func Show(env *Env, opts ShowOptions) error {
	if opts.Private && opts.Passphrase {
		return kerrors.ErrPrivatePassphraseConflict
	}

	e, err := env.chooseEntry(opts.Name)
	if err != nil {
		return err
	}

	var path string
	switch {
	case opts.Passphrase:
		if !e.HasPassphrase() {
			return kerrors.ErrNoPassphrase
		}
		path = e.PassphrasePath()
	case opts.Private:
		path = e.PrivatePath()
	default:
		if _, err := os.Stat(e.PublicPath()); err != nil {
			return e.CheckComplete()
		}
		path = e.PublicPath()
	}

	data, err := env.Encryptor.Decrypt(path)
	if err != nil {
		return err
	}

	if opts.Copy {
		if err := env.Clipboard.Copy(data); err != nil {
			return err
		}
		env.Logger.WarnfUser("Copied %s to clipboard", e.Name)
	}
	if opts.QR {
		if err := env.QR.Render(data, env.Out); err != nil {
			return err
		}
	}

	if opts.Print || (!opts.Copy && !opts.QR) {
		if _, err := env.Out.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			if _, err := env.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}

	return nil
}
