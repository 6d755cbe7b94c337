package engine

import "github.com/jkind-go/director/message"

// IvcReduction is an itinerary stage for Valid messages: it reduces the
// carried equation support to a minimal inductive validity core. The real
// minimization search is out of scope; this stand-in copies the carried
// invariants, unchanged, into the IVC field as the (already minimal, by
// assumption) core.
type IvcReduction struct {
	base
}

// NewIvcReduction creates an IVC-reduction engine.
func NewIvcReduction(publish Publisher) *IvcReduction {
	return &IvcReduction{base: newBase(message.IvcReduction, publish)}
}

func (e *IvcReduction) Run() {
	for {
		select {
		case <-e.stop:
			return
		case m := <-e.inbox:
			e.onMessage(m)
		}
	}
}

func (e *IvcReduction) onMessage(m message.Message) {
	vm, ok := m.(message.Valid)
	if !ok {
		return
	}
	dest, ok := vm.Itinerary.NextDestination()
	if !ok || dest != message.IvcReduction {
		return
	}

	vm.IVC = append([]string(nil), vm.Invariants...)
	vm.Itinerary = vm.Itinerary.Advance()
	e.publish(vm)
}
