/*
Package ink implements a platform-agnostic 2D ink-drawing engine: it turns a
live stream of pointer samples (position, pressure, timestamp) into smooth
variable-width vector strokes, keeps a layered document with undo/redo, and
emits an ordered list of abstract render commands for a host renderer to
execute.

The engine is single-threaded and synchronous; every method call runs to
completion without blocking. Hosts that drive the engine from more than one
goroutine must supply their own synchronization (a sync.RWMutex around the
Engine is sufficient — see Engine's doc comment).

In case you wish to integrate the engine in a host application, here is a
minimal example:

	package main

	import "github.com/inkstream/ink"

	func main() {
		e := ink.NewEngine(1920, 1080)
		e.SetBrush(ink.PenBrush())

		e.BeginStroke(100, 100, 0.5, 0)
		e.AddPoint(110, 105, 0.6, 0.016)
		cmds := e.EndStroke()
		_ = cmds // hand cmds to a host renderer
	}
*/
package ink
