package cmd

import (
	"github.com/sshkeep/sshkeep/internal/configs"
	logger "github.com/sshkeep/sshkeep/internal/logging"
	"github.com/sshkeep/sshkeep/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// newEnv builds the collaborator environment for a command. Tests swap
	// it for a factory returning fakes.
	newEnv = func() *workflows.Env {
		return workflows.DefaultEnv(configs.SSHKeepSettings, Logger)
	}

	RootCmd = &cobra.Command{
		Use:   "sshkeep",
		Short: "Manage SSH keys in an encrypted password store",
		Long: `sshkeep stores SSH key pairs encrypted inside a pass-compatible
password store, and retrieves, extracts or loads them into a running
ssh-agent on demand.

Key material is encrypted with gpg against the store's recipients; an
optional unlock passphrase can be stored per key. Store changes are
committed to the store's git history when one exists.`,
		// An unknown or missing command shows usage; that is not a failure.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sshkeep with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(extractCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(agentCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// SetEnvFactory replaces the environment factory for testing and returns a
// restore function.
func SetEnvFactory(f func() *workflows.Env) func() {
	old := newEnv
	newEnv = f
	return func() { newEnv = old }
}

// ResetGlobalState resets all global flag variables to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetShowFlags()
	resetExtractFlags()
}
