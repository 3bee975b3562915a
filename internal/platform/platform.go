package platform

import (
	"context"

	"github.com/mj1618/wintitle/internal/model"
)

// Presenter shows a composed title in a desktop window.
type Presenter interface {
	// Present opens a window titled w.Title and blocks until it is closed
	// or ctx is cancelled.
	Present(ctx context.Context, w model.Window, opts WindowOptions) error
}
