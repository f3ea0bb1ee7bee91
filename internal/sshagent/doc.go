// Package sshagent loads private keys into a running ssh-agent over the
// SSH_AUTH_SOCK control socket, speaking the agent protocol through
// golang.org/x/crypto/ssh/agent.
package sshagent
