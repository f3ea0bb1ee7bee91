package cmd

import (
	"github.com/sshkeep/sshkeep/internal/ui"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Add, change or remove the stored passphrase of an SSH key",
	Long: `Walks through the passphrase lifecycle for one entry: a confirmed
non-empty passphrase is stored (replacing any existing one), and a confirmed
empty passphrase removes the stored one after an explicit confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		result, err := workflows.Edit(newEnv(), name)
		if err != nil {
			return err
		}

		switch result.Action {
		case "unchanged":
			cmd.Println(ui.Muted.Sprint("No changes made to " + result.Entry))
		case "removed":
			cmd.Println(ui.Success.Sprint("✓") + " Removed passphrase for " + ui.Highlight.Sprint(result.Entry))
		default:
			cmd.Println(ui.Success.Sprint("✓") + " " + ui.Highlight.Sprint(result.Entry) + " passphrase " + result.Action)
		}
		return nil
	},
}
