// Package selector maps a list of names to one interactive choice, through
// an external fuzzy finder when one is installed or a promptui list
// otherwise. Cancellation is reported as an empty choice.
package selector
