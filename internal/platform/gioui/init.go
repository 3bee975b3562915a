//go:build cgo || windows

package gioui

import "github.com/mj1618/wintitle/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Presenter: NewPresenter()}, nil
	}
}
