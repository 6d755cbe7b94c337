package engine

import (
	"time"

	"github.com/jkind-go/director/message"
)

// CanProve decides whether a proof-oriented engine is able to settle a
// property. The real engines decide this via k-induction or PDR fixpoint
// computation; that algorithm is out of scope, so callers supply a
// predicate (defaulting to "never", i.e. always reports the property
// unknown after the attempt, mirroring a solver that can't close the proof).
type CanProve func(property string) (k int, ok bool)

// proofEngine is shared by KInduction and PDR: both attempt to prove a fixed
// property set once, after a short simulated delay, then give up on whatever
// they couldn't prove.
type proofEngine struct {
	base

	properties     []string
	delay          time.Duration
	canProve       CanProve
	validItinerary message.Itinerary
}

func newProofEngine(name message.EngineName, publish Publisher, properties []string, delay time.Duration, canProve CanProve, validItinerary message.Itinerary) proofEngine {
	if canProve == nil {
		canProve = func(string) (int, bool) { return 0, false }
	}
	return proofEngine{
		base:           newBase(name, publish),
		properties:     properties,
		delay:          delay,
		canProve:       canProve,
		validItinerary: validItinerary,
	}
}

func (e *proofEngine) run() {
	timer := time.NewTimer(e.delay)
	defer timer.Stop()

	remaining := make(map[string]struct{}, len(e.properties))
	for _, p := range e.properties {
		remaining[p] = struct{}{}
	}

	for {
		select {
		case <-e.stop:
			return
		case m := <-e.inbox:
			e.onDirectorUnknown(m, remaining)
			if len(remaining) == 0 {
				return
			}
		case <-timer.C:
			e.attempt(remaining)
			return
		}
	}
}

func (e *proofEngine) onDirectorUnknown(m message.Message, remaining map[string]struct{}) {
	um, ok := m.(message.Unknown)
	if !ok || um.Source != message.Director {
		return
	}
	for _, p := range um.Properties {
		delete(remaining, p)
	}
}

func (e *proofEngine) attempt(remaining map[string]struct{}) {
	var unknown []string
	for p := range remaining {
		if k, ok := e.canProve(p); ok {
			e.publish(message.Valid{
				Source:     e.name,
				Properties: []string{p},
				K:          k,
				Itinerary:  e.validItinerary,
			})
			continue
		}
		unknown = append(unknown, p)
	}
	if len(unknown) > 0 {
		e.publish(message.Unknown{Source: e.name, Properties: unknown})
	}
}
