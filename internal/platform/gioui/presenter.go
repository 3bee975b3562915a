//go:build cgo || windows

package gioui

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/mj1618/wintitle/internal/model"
	"github.com/mj1618/wintitle/internal/platform"
)

var background = color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}

// Presenter opens one Gio window per Present call.
type Presenter struct {
	// exit ends the process once the window is gone. app.Main never
	// returns on most platforms, so Present cannot.
	exit func(code int)
}

// NewPresenter returns a Presenter that exits the process when its
// window closes.
func NewPresenter() *Presenter {
	return &Presenter{exit: os.Exit}
}

// Present must be called from the main goroutine.
func (p *Presenter) Present(ctx context.Context, win model.Window, opts platform.WindowOptions) error {
	errc := make(chan error, 1)
	go func() {
		w := app.NewWindow(
			app.Title(win.Title),
			app.Size(unit.Dp(opts.Width), unit.Dp(opts.Height)),
		)
		err := run(ctx, w, win)
		errc <- err
		if err != nil {
			fmt.Fprintf(os.Stderr, "window: %v\n", err)
			p.exit(1)
			return
		}
		p.exit(0)
	}()
	app.Main()
	return <-errc
}

func run(ctx context.Context, w *app.Window, win model.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	var ops op.Ops
	return loop(ctx, w, func(e system.FrameEvent) {
		gtx := layout.NewContext(&ops, e)
		paint.Fill(gtx.Ops, background)
		layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return material.Body1(th, win.Title).Layout(gtx)
		})
		e.Frame(gtx.Ops)
	})
}
