package gioui

import (
	"context"

	"gioui.org/io/event"
	"gioui.org/io/system"
)

// window is the part of *app.Window the event loop drives.
type window interface {
	NextEvent() event.Event
	Perform(actions system.Action)
}

// loop pumps w until it is destroyed, calling frame for every FrameEvent.
// Cancelling ctx asks the window to close; the loop still runs until the
// matching DestroyEvent arrives.
func loop(ctx context.Context, w window, frame func(system.FrameEvent)) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			w.Perform(system.ActionClose)
		case <-stop:
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			frame(e)
		}
	}
}
