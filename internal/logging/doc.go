// Package logger provides leveled, colored logging for sshkeep commands.
//
// Logging behavior is controlled by two persistent flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
//	Logger.Infof()     // Shown with --verbose
//	Logger.Debugf()    // Shown only with --debug
//	Logger.Warnf()     // Always shown, diagnostic register
//	Logger.WarnfUser() // Always shown, operator-facing register
//	Logger.Errorf()    // Always shown
//
// Commands create a logger in their PersistentPreRun and hand it to the
// workflow layer.
package logger
