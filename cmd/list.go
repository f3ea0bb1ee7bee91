package cmd

import (
	"github.com/sshkeep/sshkeep/internal/ui"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the SSH keys in the store",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Listing SSH keys...")
		defer cleanup()

		names, err := workflows.List(newEnv())
		if err != nil {
			return err
		}

		if len(names) == 0 {
			spinner.FinalMSG = ui.Muted.Sprint("The store has no SSH keys yet") + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sshkeep add") + " to add one"
			return nil
		}

		msg := ""
		for _, name := range names {
			msg += name + "\n"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
