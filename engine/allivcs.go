package engine

import "github.com/jkind-go/director/message"

// AllIvcs is an itinerary stage for Valid messages, run after IvcReduction:
// it enumerates every minimal inductive validity core rather than just one.
// The real enumeration search is out of scope; this stand-in reports the
// single core already carried on the message as the only member found.
type AllIvcs struct {
	base
}

// NewAllIvcs creates an all-IVCs extraction engine.
func NewAllIvcs(publish Publisher) *AllIvcs {
	return &AllIvcs{base: newBase(message.IvcReductionAll, publish)}
}

func (e *AllIvcs) Run() {
	for {
		select {
		case <-e.stop:
			return
		case m := <-e.inbox:
			e.onMessage(m)
		}
	}
}

func (e *AllIvcs) onMessage(m message.Message) {
	vm, ok := m.(message.Valid)
	if !ok {
		return
	}
	dest, ok := vm.Itinerary.NextDestination()
	if !ok || dest != message.IvcReductionAll {
		return
	}

	vm.AllIVCs = append(vm.AllIVCs, message.AllIVC{
		IVCs: append([]string(nil), vm.IVC...),
		All:  [][]string{append([]string(nil), vm.IVC...)},
	})
	vm.Itinerary = vm.Itinerary.Advance()
	e.publish(vm)
}
