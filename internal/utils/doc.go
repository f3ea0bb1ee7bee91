// Package utils holds small shared helpers for formatting and validation.
package utils
