package cmd

import (
	"github.com/sshkeep/sshkeep/internal/ui"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent [name]",
	Short: "Decrypt an SSH key and add it to the running ssh-agent",
	Long: `Decrypts the private key in memory and hands it to the agent behind
SSH_AUTH_SOCK. A stored passphrase is used to unlock the key automatically;
otherwise you are prompted when the key needs one. Nothing is ever written
to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		loaded, err := workflows.AgentLoad(newEnv(), name)
		if err != nil {
			return err
		}

		cmd.Println(ui.Success.Sprint("✓") + " Added " + ui.Highlight.Sprint(loaded) + " to the ssh-agent")
		return nil
	},
}
