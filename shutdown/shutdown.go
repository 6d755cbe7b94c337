// Package shutdown runs the Director's post-processing exactly once,
// whether the run finishes normally or the process receives an interrupt.
// The original Director relies on a JVM shutdown-hook registry; Go has no
// equivalent, so this emulates it with os/signal.Notify guarding a single
// atomic compare-and-swap, the same guard idiom tom-lisboa-deepH uses in
// cmd/deeph/coach.go to make sure a hint is only recorded once no matter
// which goroutine gets there first.
package shutdown

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

// settleDelay is how long the signal path pauses after a signal arrives
// before it tries to claim post-processing.
const settleDelay = 100 * time.Millisecond

// Coordinator ensures a finalize function runs exactly once, whether it is
// triggered by the normal run completing or by SIGINT/SIGTERM arriving
// first.
type Coordinator struct {
	finalize func()
	done     atomic.Bool
	doneCh   chan struct{}
	sigs     chan os.Signal
}

// NewCoordinator installs a signal handler that runs finalize on SIGINT or
// SIGTERM. The caller must call Remove when the run finishes normally; see
// Remove for the protocol.
func NewCoordinator(finalize func()) *Coordinator {
	c := &Coordinator{
		finalize: finalize,
		sigs:     make(chan os.Signal, 1),
		doneCh:   make(chan struct{}),
	}
	signal.Notify(c.sigs, os.Interrupt, syscall.SIGTERM)
	go c.wait()
	return c
}

func (c *Coordinator) wait() {
	if _, ok := <-c.sigs; !ok {
		return
	}
	time.Sleep(settleDelay)
	if c.done.CompareAndSwap(false, true) {
		c.finalize()
		close(c.doneCh)
	}
}

// Remove stops listening for signals and reports whether the caller won the
// race to run finalize itself. If a signal already claimed it, Remove blocks
// until that in-flight finalize has completed and returns false — the
// caller must not run its own post-processing in that case, and may safely
// assume finalize has already returned by the time Remove does.
func (c *Coordinator) Remove() bool {
	signal.Stop(c.sigs)
	close(c.sigs)
	if c.done.CompareAndSwap(false, true) {
		return true
	}
	<-c.doneCh
	return false
}
