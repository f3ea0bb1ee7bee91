// Package prompttest provides a scripted Prompter for tests.
package prompttest

import (
	"fmt"
	"testing"
)

// Script replays canned answers in order. Confirm answers come from Confirms,
// Input answers from Inputs, ReadSecret answers from Secrets. Running out of
// answers fails the test.
type Script struct {
	T        *testing.T
	Confirms []bool
	Inputs   []string
	Secrets  []string

	// Asked records every question label, in order, for assertions.
	Asked []string
}

func (s *Script) Confirm(question string, def bool) (bool, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Confirms) == 0 {
		s.T.Fatalf("unexpected Confirm(%q), script exhausted", question)
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}

func (s *Script) Input(label, def string) (string, error) {
	s.Asked = append(s.Asked, label)
	if len(s.Inputs) == 0 {
		s.T.Fatalf("unexpected Input(%q), script exhausted", label)
	}
	answer := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return answer, nil
}

func (s *Script) ReadSecret(label string) ([]byte, error) {
	s.Asked = append(s.Asked, label)
	if len(s.Secrets) == 0 {
		s.T.Fatalf("unexpected ReadSecret(%q), script exhausted", label)
	}
	answer := s.Secrets[0]
	s.Secrets = s.Secrets[1:]
	return []byte(answer), nil
}

// Exhausted returns an error if any scripted answers were left unconsumed.
func (s *Script) Exhausted() error {
	if len(s.Confirms)+len(s.Inputs)+len(s.Secrets) > 0 {
		return fmt.Errorf("script not exhausted: %d confirms, %d inputs, %d secrets left",
			len(s.Confirms), len(s.Inputs), len(s.Secrets))
	}
	return nil
}
