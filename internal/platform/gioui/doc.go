// Package gioui presents titles in a native window using Gio.
// Gio needs cgo on Linux and macOS; without it the package registers
// nothing and platform.NewProvider reports ErrUnsupported.
package gioui
