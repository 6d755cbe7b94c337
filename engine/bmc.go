package engine

import (
	"time"

	"github.com/jkind-go/director/message"
)

// CanRefute decides whether BMC has found a counterexample for a property at
// the current depth. The real engine would find this by unrolling the
// transition relation and checking satisfiability; that search is out of
// scope, so callers supply a predicate (defaulting to "never", i.e. BMC never
// refutes anything and only ever reports properties unknown at the depth
// ceiling).
type CanRefute func(property string) (length int, model message.Model, ok bool)

// BMC is a minimal stand-in for bounded model checking: it advances a base
// step on a fixed cadence, refutes any property canRefute accepts, and gives
// up on whatever remains once a configured depth ceiling is reached without
// having been told (via a Director-sourced Unknown broadcast) that the
// property already settled.
type BMC struct {
	base

	maxDepth int
	interval time.Duration
	depth    int

	pending   map[string]struct{}
	canRefute CanRefute

	invalidItinerary message.Itinerary
}

// NewBMC creates a BMC engine tracking properties, giving up on any of them
// once depth maxDepth is reached. invalidItinerary is attached to every
// Invalid message it publishes, per Director.java's
// getInvalidMessageItinerary().
func NewBMC(publish Publisher, properties []string, maxDepth int, interval time.Duration, canRefute CanRefute, invalidItinerary message.Itinerary) *BMC {
	if canRefute == nil {
		canRefute = func(string) (int, message.Model, bool) { return 0, nil, false }
	}
	e := &BMC{
		base:             newBase(message.BMC, publish),
		maxDepth:         maxDepth,
		interval:         interval,
		pending:          make(map[string]struct{}, len(properties)),
		canRefute:        canRefute,
		invalidItinerary: invalidItinerary,
	}
	for _, p := range properties {
		e.pending[p] = struct{}{}
	}
	return e
}

func (e *BMC) Run() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case m := <-e.inbox:
			e.onMessage(m)
		case <-ticker.C:
			e.advance()
		}
	}
}

func (e *BMC) onMessage(m message.Message) {
	um, ok := m.(message.Unknown)
	if !ok || um.Source != message.Director {
		return
	}
	for _, p := range um.Properties {
		delete(e.pending, p)
	}
}

func (e *BMC) advance() {
	if len(e.pending) == 0 {
		return
	}
	e.depth++

	for p := range e.pending {
		length, model, ok := e.canRefute(p)
		if !ok {
			continue
		}
		e.publish(message.Invalid{
			Source:     message.BMC,
			Properties: []string{p},
			Length:     length,
			Model:      model,
			Itinerary:  e.invalidItinerary,
		})
		delete(e.pending, p)
	}

	remaining := e.remaining()
	if len(remaining) == 0 {
		return
	}
	e.publish(message.BaseStep{Step: e.depth, Properties: remaining})

	if e.depth >= e.maxDepth {
		e.publish(message.Unknown{Source: message.BMC, Properties: remaining})
	}
}

func (e *BMC) remaining() []string {
	out := make([]string, 0, len(e.pending))
	for p := range e.pending {
		out = append(out, p)
	}
	return out
}
