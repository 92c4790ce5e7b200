package cli

import (
	"context"
)

// Serve starts the viewer in the background. The address is bound before
// returning, so a busy port is reported right away. The viewer keeps running
// until the REPL exits.
func (a *App) Serve(ctx context.Context) error {
	if a.viewerStop != nil {
		printlnFn("Viewer already running on", a.config.ViewerAddr)
		return nil
	}

	ln, err := a.viewer.Listen()
	if err != nil {
		return err
	}

	vctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		err := a.viewer.Serve(vctx, ln)
		if err != nil {
			a.logger.Error(vctx, "viewer stopped", "error", err)
		}
		done <- err
	}()

	a.viewerStop = cancel
	a.viewerDone = done
	printlnFn("Viewer running on http://" + ln.Addr().String())
	return nil
}

func (a *App) stopViewer() {
	if a.viewerStop == nil {
		return
	}
	a.viewerStop()
	<-a.viewerDone
	a.viewerStop = nil
	a.viewerDone = nil
}
