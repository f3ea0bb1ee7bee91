// Package prompt wraps interactive terminal questions behind the Prompter
// interface so workflows can be driven by scripted fakes in tests.
package prompt
