// Package engine defines the Engine contract the Director runs its proof
// engines through, plus minimal stand-in implementations of each one. The
// engines' true solver algorithms are out of scope; these stand-ins exist to
// exercise the Director's message protocol end to end.
package engine

import "github.com/jkind-go/director/message"

// Engine is a named unit of work that runs on its own goroutine, accepts
// messages via HandleMessage, can be stopped cooperatively, and exposes any
// fatal error that terminated it. No other assumption is made about its
// behavior.
type Engine interface {
	message.Handler

	// Name identifies the engine; it is the Source used on verdicts it
	// originates (itinerary stages keep the original Source when they
	// forward) and the destination tag itineraries use to address it.
	Name() message.EngineName

	// Run executes the engine until Stop is called or it decides it has no
	// more work to do. Called on its own goroutine.
	Run()

	// Stop cooperatively asks the engine to terminate. Safe to call more
	// than once and safe to call before Run returns.
	Stop()

	// LastError returns the fatal error that terminated Run, or nil if the
	// engine has not failed (or has not yet stopped).
	LastError() error
}
