package cmd

import (
	"github.com/sshkeep/sshkeep/internal/ui"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Aliases: []string{"remove", "rm"},
	Short:   "Remove an SSH key entry from the store",
	Long: `Deletes the whole entry directory, private key, public key and stored
passphrase alike, after an explicit confirmation that defaults to no.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		deleted, err := workflows.Delete(newEnv(), name)
		if err != nil {
			return err
		}

		cmd.Println(ui.Success.Sprint("✓") + " Removed SSH key " + ui.Highlight.Sprint(deleted))
		return nil
	},
}
