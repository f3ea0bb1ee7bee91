// Package configs resolves where the encrypted SSH key store and the user's
// SSH directory live.
//
// Precedence, highest first:
//
//  1. Environment: PASSWORD_STORE_DIR, PASS_SSH_DIR, SSH_DIR,
//     SSHKEEP_CLIPBOARD, SSHKEEP_SELECTOR
//  2. Config file: $XDG_CONFIG_HOME/sshkeep/config.yaml
//  3. Defaults: ~/.password-store/ssh and ~/.ssh
//
// Settings are resolved once at startup into SSHKeepSettings and never
// re-read during a command.
package configs
