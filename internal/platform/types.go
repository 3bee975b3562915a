package platform

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultWidth  = 480
	DefaultHeight = 160
)

// WindowOptions controls the presented window.
type WindowOptions struct {
	Width  int // in device-independent pixels
	Height int
}

// DefaultWindowOptions returns the default window size.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Width: DefaultWidth, Height: DefaultHeight}
}

// ParseSize parses a "WxH" string such as "480x160".
func ParseSize(s string) (WindowOptions, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return WindowOptions{}, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	vals := make([]int, 2)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return WindowOptions{}, fmt.Errorf("invalid size %q: %w", s, err)
		}
		if v <= 0 {
			return WindowOptions{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
		}
		vals[i] = v
	}
	return WindowOptions{Width: vals[0], Height: vals[1]}, nil
}
