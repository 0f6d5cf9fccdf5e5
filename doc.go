// Package clicktrack detects taps on semantically clickable UI elements and
// reports them as telemetry.
//
// A Generator attaches to a single Window at a time. While attached it wraps
// the window's input callback; every pointer-up that passes through is
// resolved against the window's current node tree and produces:
//
//   - one "app.screen.click" record with the rounded window coordinate
//   - at most one "app.widget.click" record naming the element that was hit
//
// Resolution walks the tree topmost-first and picks the deepest placed node
// whose bounds contain the point and whose semantics declare a click action.
//
// Basic usage:
//
//	gen, err := clicktrack.New(telemetry.NewSlogLogger(nil), geometry)
//	if err != nil {
//	    return err
//	}
//	lc := clicktrack.NewLifecycle(gen)
//	lc.OnForeground(window)
//	defer lc.OnBackground()
//
// The generator runs inline with input dispatch and must be driven from a
// single goroutine.
package clicktrack
