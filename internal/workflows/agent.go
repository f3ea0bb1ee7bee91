package workflows

import (
	"errors"

	"github.com/sshkeep/sshkeep/internal/audit"
	"github.com/sshkeep/sshkeep/internal/sshagent"
)

// AgentLoad decrypts an entry's private key and adds it to the running
// ssh-agent. A stored passphrase blob is decrypted and used to unlock the
// key; without one, the operator is prompted only when the key turns out to
// be encrypted. Decrypted material stays in memory end to end.
func AgentLoad(env *Env, name string) (string, error) {
	e, err := env.chooseEntry(name)
	if err != nil {
		return "", err
	}

	pemBytes, err := env.Encryptor.Decrypt(e.PrivatePath())
	if err != nil {
		return "", err
	}

	var pass []byte
	if e.HasPassphrase() {
		pass, err = env.Encryptor.Decrypt(e.PassphrasePath())
		if err != nil {
			return "", err
		}
	}

	err = env.Agent.Add(pemBytes, pass, e.Name)
	if errors.Is(err, sshagent.ErrPassphraseRequired) {
		pass, err = env.Prompter.ReadSecret("Enter passphrase for " + e.Name)
		if err != nil {
			return "", err
		}
		err = env.Agent.Add(pemBytes, pass, e.Name)
	}
	if err != nil {
		return "", err
	}

	env.Audit.Log(audit.Entry{Operation: "agent", KeyName: e.Name})
	return e.Name, nil
}
