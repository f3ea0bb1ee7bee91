package vcs

import (
	"errors"
	"reflect"
	"testing"
)

// fakeRunner records invocations and replays canned results.
type fakeRunner struct {
	calls   [][]string
	results map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	key := args[0]
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.results[key], nil
}

func TestNewDetectsWorkTree(t *testing.T) {
	r := &fakeRunner{results: map[string]string{"rev-parse": "true\n"}}
	g := New("/store", WithRunner(r))

	if !g.active {
		t.Error("active = false inside a work tree")
	}
}

func TestNewOutsideWorkTree(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"rev-parse": errors.New("not a git repository")}}
	g := New("/store", WithRunner(r))

	if g.active {
		t.Error("active = true outside a work tree")
	}
}

func TestAddAndCommit(t *testing.T) {
	r := &fakeRunner{results: map[string]string{"rev-parse": "true\n"}}
	g := New("/store", WithRunner(r))

	if err := g.AddAndCommit("Added SSH key work", "/store/work"); err != nil {
		t.Fatalf("AddAndCommit: %v", err)
	}

	want := [][]string{
		{"rev-parse", "--is-inside-work-tree"},
		{"add", "--", "/store/work"},
		{"commit", "-m", "Added SSH key work"},
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestAddAndCommitInertWithoutRepo(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"rev-parse": errors.New("nope")}}
	g := New("/store", WithRunner(r))

	if err := g.AddAndCommit("msg", "/store/x"); err != nil {
		t.Fatalf("AddAndCommit should be a no-op, got %v", err)
	}
	if len(r.calls) != 1 { // just the probe
		t.Errorf("calls = %v, want only the rev-parse probe", r.calls)
	}
}

func TestAddAndCommitPropagatesFailure(t *testing.T) {
	r := &fakeRunner{
		results: map[string]string{"rev-parse": "true\n"},
		errs:    map[string]error{"commit": errors.New("hook rejected")},
	}
	g := New("/store", WithRunner(r))

	if err := g.AddAndCommit("msg", "/store/x"); err == nil {
		t.Fatal("AddAndCommit swallowed a commit failure")
	}
}
