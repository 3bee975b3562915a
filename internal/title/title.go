// Package title composes display titles from a base string and a record.
package title

import (
	"fmt"

	"github.com/mj1618/wintitle/internal/codec"
	"github.com/mj1618/wintitle/internal/model"
)

const (
	DefaultBase = "MainWindow"
	DefaultName = "CIAO"
)

// Compose appends the serialized record to base with no separator.
// On failure it returns "" so callers never display partial text.
func Compose(base string, r model.Record) (string, error) {
	text, err := codec.Serialize(r)
	if err != nil {
		return "", fmt.Errorf("compose title: %w", err)
	}
	return base + text, nil
}

// ComposeWindow is Compose returning the parts alongside the title.
func ComposeWindow(base string, r model.Record) (model.Window, error) {
	text, err := codec.Serialize(r)
	if err != nil {
		return model.Window{}, fmt.Errorf("compose title: %w", err)
	}
	return model.Window{Base: base, Record: text, Title: base + text}, nil
}
