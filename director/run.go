package director

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jkind-go/director/shutdown"
)

// Exit codes, named after the Java exception classes whose classification
// this reproduces.
const (
	ExitSuccess           = 0
	ExitUncaughtException = 1
	ExitIvcException      = 2
)

// Run drives the supervision loop described in §4.4 to completion and
// returns the process exit code. It blocks until a termination condition
// holds, runs post-processing exactly once, and emits the accumulated
// output buffer followed by the writer's rendered content.
func (d *Director) Run() int {
	d.coordinator = shutdown.NewCoordinator(d.finalize)

	for {
		d.drainMailbox()
		if d.shouldStop() {
			break
		}
		time.Sleep(pollInterval)
	}
	d.drainMailbox()

	if d.coordinator.Remove() {
		d.finalize()
	}

	if d.settings.MiniJKind {
		for _, e := range d.engines {
			e.Stop()
		}
	}

	fmt.Print(d.output.String())
	fmt.Print(d.w.String())

	return d.exitCode
}

func (d *Director) shouldStop() bool {
	if time.Since(d.startTime) > d.settings.Timeout {
		return true
	}
	if len(d.remaining) == 0 {
		return true
	}
	if !d.anyEngineAlive() {
		return true
	}
	if d.failedEngine() != nil {
		return true
	}
	if d.stdin.Requested() {
		return true
	}
	return false
}

func (d *Director) anyEngineAlive() bool {
	for _, done := range d.engineDone {
		select {
		case <-done:
		default:
			return true
		}
	}
	return false
}

func (d *Director) failedEngine() error {
	for _, e := range d.engines {
		if err := e.LastError(); err != nil {
			return err
		}
	}
	return nil
}

// finalize is the shutdown coordinator's callback (§4.5): it sweeps unknown
// verdicts for whatever is left in remaining, closes the writer, flushes any
// advice writer, and computes the exit code. It must run exactly once,
// whether called directly after the loop or from the signal handler.
func (d *Director) finalize() {
	d.sweepRemaining()
	d.w.End()
	if d.adviceWriter != nil {
		if err := d.adviceWriter.Write(); err != nil {
			d.log.Printf("advice: %v", err)
		}
	}
	d.printSummary()
	d.exitCode = d.computeExitCode()
}

func (d *Director) sweepRemaining() {
	var left []string
	for _, p := range d.propertyOrder {
		if _, ok := d.remaining[p]; ok {
			left = append(left, p)
		}
	}
	if len(left) == 0 {
		return
	}
	d.w.WriteUnknown(left, d.baseStep, d.allInductiveCounterexamples(), d.runtime())
	for _, p := range left {
		delete(d.remaining, p)
	}
}

func (d *Director) computeExitCode() int {
	err := d.failedEngine()
	if err == nil {
		return ExitSuccess
	}
	if strings.Contains(strings.ToLower(err.Error()), "ivc") {
		return ExitIvcException
	}
	return ExitUncaughtException
}

func (d *Director) printPreamble() {
	if d.settings.XMLToStdout {
		return
	}
	fmt.Fprintf(&d.output, "director: analyzing %d propert(y/ies)\n", len(d.propertyOrder))
}

func (d *Director) printSummary() {
	if d.settings.XMLToStdout {
		return
	}
	valid := append([]string(nil), d.valid...)
	invalid := append([]string(nil), d.invalid...)
	sort.Strings(valid)
	sort.Strings(invalid)
	fmt.Fprintf(&d.output, "director: done in %s — valid=%v invalid=%v\n", d.runtime().Round(time.Millisecond), valid, invalid)
}
