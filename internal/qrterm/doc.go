// Package qrterm renders QR codes directly in the terminal using unicode
// half blocks, for transferring a public key or passphrase to a phone.
package qrterm
