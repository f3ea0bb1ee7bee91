// Package ui provides semantic text formatters for command output.
//
// Formatters degrade gracefully when color is unavailable: names keep their
// quoting, commands keep their backticks, and everything else passes through
// unchanged. Color is suppressed when NO_COLOR is set or stdout is not a
// terminal.
package ui
