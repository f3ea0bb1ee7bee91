package cmd

import (
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	showPrivate    bool
	showPassphrase bool
	showCopy       bool
	showQR         bool
	showPrint      bool
)

func init() {
	showCmd.Flags().BoolVar(&showPrivate, "private", false, "show the private key instead of the public key")
	showCmd.Flags().BoolVar(&showPassphrase, "passphrase", false, "show the stored passphrase")
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the output to the clipboard")
	showCmd.Flags().BoolVar(&showQR, "qr", false, "render the output as a QR code")
	showCmd.Flags().BoolVar(&showPrint, "print", false, "print to stdout even when copying or rendering a QR code")
}

// resetShowFlags resets the show command's flag state for testing.
func resetShowFlags() {
	showPrivate = false
	showPassphrase = false
	showCopy = false
	showQR = false
	showPrint = false
}

var showCmd = &cobra.Command{
	Use:     "show [name]",
	Aliases: []string{"cat"},
	Short:   "Decrypt and display a stored SSH key or passphrase",
	Long: `Shows the public key by default. --private and --passphrase select the
other blobs and are mutually exclusive. The output can be copied to the
clipboard or rendered as a QR code instead of (or, with --print, alongside)
printing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		return workflows.Show(newEnv(), workflows.ShowOptions{
			Name:       name,
			Private:    showPrivate,
			Passphrase: showPassphrase,
			Copy:       showCopy,
			QR:         showQR,
			Print:      showPrint,
		})
	},
}
