package cmd

import (
	"github.com/sshkeep/sshkeep/internal/ui"
	"github.com/sshkeep/sshkeep/internal/utils"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	extractPrivate bool
	extractPublic  bool
)

func init() {
	extractCmd.Flags().BoolVar(&extractPrivate, "private", false, "extract only the private key")
	extractCmd.Flags().BoolVar(&extractPublic, "public", false, "extract only the public key")
}

// resetExtractFlags resets the extract command's flag state for testing.
func resetExtractFlags() {
	extractPrivate = false
	extractPublic = false
}

var extractCmd = &cobra.Command{
	Use:   "extract [name]",
	Short: "Decrypt a stored SSH key back into your SSH directory",
	Long: `Writes the decrypted key files into your SSH directory. With neither
--private nor --public, both halves are written. Existing files are never
overwritten; collisions are resolved by renaming interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		result, err := workflows.Extract(newEnv(), workflows.ExtractOptions{
			Name:    name,
			Private: extractPrivate,
			Public:  extractPublic,
		})
		if err != nil {
			return err
		}

		cmd.Println(ui.Success.Sprint("✓") + " Extracted " + ui.Highlight.Sprint(result.Entry) +
			utils.FormatPaths(result.Written))
		return nil
	},
}
