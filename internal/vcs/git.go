package vcs

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git with the given arguments in dir. Tests substitute a
// recording fake.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// ExecRunner runs the real git binary.
type ExecRunner struct{}

func (ExecRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// Git commits store changes when the store root sits inside a git work
// tree, and silently does nothing otherwise.
type Git struct {
	root   string
	runner Runner
	active bool
}

// Option configures Git.
type Option func(*Git)

// WithRunner sets a custom command runner.
func WithRunner(r Runner) Option {
	return func(g *Git) { g.runner = r }
}

// New probes root for an enclosing git work tree. The probe happens once;
// a Git for a non-repository store stays inert for its lifetime.
func New(root string, opts ...Option) *Git {
	g := &Git{root: root, runner: ExecRunner{}}
	for _, opt := range opts {
		opt(g)
	}

	out, err := g.runner.Run(root, "rev-parse", "--is-inside-work-tree")
	g.active = err == nil && strings.TrimSpace(out) == "true"
	return g
}

// AddAndCommit stages the given paths and records a commit. No-op when the
// store is not under version control.
func (g *Git) AddAndCommit(message string, paths ...string) error {
	if !g.active {
		return nil
	}

	args := append([]string{"add", "--"}, paths...)
	if _, err := g.runner.Run(g.root, args...); err != nil {
		return err
	}

	_, err := g.runner.Run(g.root, "commit", "-m", message)
	return err
}
