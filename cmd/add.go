package cmd

import (
	"github.com/sshkeep/sshkeep/internal/ui"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Encrypt an SSH key pair from your SSH directory into the store",
	Long: `Picks a key pair from your SSH directory, derives the entry name from
the public key's comment field, and encrypts both halves into the store.
Optionally stores the key's unlock passphrase alongside them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")
		env := newEnv()

		result, err := workflows.Add(env)
		if err != nil {
			return err
		}

		Logger.Infof("Add completed for entry: %s", result.Name)
		msg := ui.Success.Sprint("✓") + " Added SSH key " + ui.Highlight.Sprint(result.Name) + "\n" +
			"    created: " + ui.Path.Sprint(result.Dir)
		if result.StoredPassphrase {
			msg += "\n" + ui.Info.Sprint("→") + " Passphrase stored alongside the key"
		}
		cmd.Println(msg)
		return nil
	},
}
