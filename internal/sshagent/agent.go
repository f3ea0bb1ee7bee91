package sshagent

import (
	"errors"
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	kerrors "github.com/sshkeep/sshkeep/internal/errors"
)

// ErrPassphraseRequired indicates the private key is encrypted and no
// passphrase was supplied. Callers prompt and retry.
var ErrPassphraseRequired = errors.New("private key is encrypted, passphrase required")

// Loader adds decrypted private keys to the ssh-agent reachable over
// SSH_AUTH_SOCK.
type Loader struct{}

// Add parses the PEM-encoded private key, decrypting it with passphrase when
// the key itself is encrypted, and hands it to the running agent. The key
// material only ever lives in memory.
func (Loader) Add(pemBytes, passphrase []byte, comment string) error {
	key, err := parsePrivateKey(pemBytes, passphrase)
	if err != nil {
		return err
	}

	client, closeConn, err := connect()
	if err != nil {
		return err
	}
	defer closeConn()

	if err := client.Add(agent.AddedKey{PrivateKey: key, Comment: comment}); err != nil {
		return fmt.Errorf("ssh-agent rejected key: %w", err)
	}
	return nil
}

func parsePrivateKey(pemBytes, passphrase []byte) (interface{}, error) {
	key, err := ssh.ParseRawPrivateKey(pemBytes)
	if err == nil {
		return key, nil
	}

	var missing *ssh.PassphraseMissingError
	if !errors.As(err, &missing) {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	if len(passphrase) == 0 {
		return nil, ErrPassphraseRequired
	}

	key, err = ssh.ParseRawPrivateKeyWithPassphrase(pemBytes, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt private key: %w", err)
	}
	return key, nil
}

// connect dials the agent socket named by SSH_AUTH_SOCK.
func connect() (agent.Agent, func(), error) {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil, nil, kerrors.ErrNoAgent
	}

	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", kerrors.ErrNoAgent, err)
	}
	return agent.NewClient(conn), func() { conn.Close() }, nil
}
