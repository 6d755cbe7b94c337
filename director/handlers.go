package director

import (
	"sort"

	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/ivc"
	"github.com/jkind-go/director/message"
)

// HandleMessage is the Director's own handler, dispatched by broadcast
// alongside every engine's handler (§4.4.7).
func (d *Director) HandleMessage(m message.Message) {
	switch t := m.(type) {
	case message.Valid:
		d.handleValid(t)
	case message.Invalid:
		d.handleInvalid(t)
	case message.InductiveCounterexample:
		d.handleInductiveCounterexample(t)
	case message.Unknown:
		d.handleUnknown(t)
	case message.BaseStep:
		d.handleBaseStep(t)
	case message.Invariant:
		// No-op: the Director receives but does not act on cross-engine
		// invariant broadcasts today. See design notes.
	}
}

// broadcast delivers m to the Director's own handler, then to every engine
// in registration order (§4.4.7). This is the only place messages are
// dispatched; itinerary stages route by publishing an advanced copy back
// into the mailbox, which reaches this same broadcast on the next drain.
func (d *Director) broadcast(m message.Message) {
	d.HandleMessage(m)
	for _, e := range d.engines {
		e.HandleMessage(m)
	}
}

func (d *Director) drainMailbox() {
	for {
		select {
		case m := <-d.mailbox:
			d.broadcast(m)
		default:
			return
		}
	}
}

func (d *Director) handleValid(vm message.Valid) {
	if dest, ok := vm.Itinerary.NextDestination(); ok {
		if dest == message.IvcReduction && d.adviceWriter != nil {
			d.adviceWriter.AddInvariants(vm.Invariants)
		}
		return
	}

	newlyValid := intersect(vm.Properties, d.remaining)
	if len(newlyValid) == 0 {
		return
	}
	for _, p := range newlyValid {
		delete(d.remaining, p)
		delete(d.inductiveCounterexamples, p)
	}
	d.valid = append(d.valid, newlyValid...)

	if d.adviceWriter != nil {
		d.adviceWriter.AddInvariants(vm.Invariants)
	}

	var invariants []string
	if d.settings.ReduceIvc {
		invariants = vm.Invariants
	}

	ivcOut := vm.IVC
	if d.settings.ReduceIvc && !d.settings.MiniJKind {
		ivcOut = ivc.FindRightSide(vm.IVC, d.settings.AllAssigned, d.analysisSpec.Node.Equations)
	}

	d.w.WriteValid(newlyValid, vm.Source, vm.K, vm.ProofTime, d.runtime(), invariants, ivcOut, vm.AllIVCs, vm.MivcTimedOut)
}

func (d *Director) handleInvalid(im message.Invalid) {
	if _, ok := im.Itinerary.NextDestination(); ok {
		return
	}

	newlyInvalid := intersect(im.Properties, d.remaining)
	if len(newlyInvalid) == 0 {
		return
	}
	for _, p := range newlyInvalid {
		delete(d.remaining, p)
		delete(d.inductiveCounterexamples, p)
	}
	d.invalid = append(d.invalid, newlyInvalid...)

	for _, p := range newlyInvalid {
		model := counterexample.Reconstruct(d.userSpec, d.analysisSpec, im.Model, p, im.Length, true)
		cex := counterexample.Extract(d.userSpec, p, im.Length, model)
		d.w.WriteInvalid(p, im.Source, cex, d.runtime())
	}
}

func (d *Director) handleInductiveCounterexample(m message.InductiveCounterexample) {
	for _, p := range m.Properties {
		model := counterexample.Reconstruct(d.userSpec, d.analysisSpec, m.Model, p, m.Length, false)
		d.inductiveCounterexamples[p] = counterexample.Extract(d.userSpec, p, m.Length, model)
	}
}

func (d *Director) handleUnknown(um message.Unknown) {
	if um.Source == message.Director {
		return
	}

	switch um.Source {
	case message.BMC:
		for _, p := range um.Properties {
			d.bmcUnknowns[p] = d.baseStep
		}
	case message.KInduction:
		for _, p := range um.Properties {
			d.kIndUnknowns[p] = struct{}{}
		}
	case message.PDR:
		for _, p := range um.Properties {
			d.pdrUnknowns[p] = struct{}{}
		}
	}

	groups := make(map[int][]string)
	for _, p := range um.Properties {
		if _, ok := d.remaining[p]; !ok {
			continue
		}
		if !d.isCompletelyUnknown(p) {
			continue
		}
		step := d.bmcUnknowns[p]
		groups[step] = append(groups[step], p)
	}
	if len(groups) == 0 {
		return
	}

	steps := make([]int, 0, len(groups))
	for step := range groups {
		steps = append(steps, step)
	}
	sort.Ints(steps)

	for _, step := range steps {
		props := groups[step]
		for _, p := range props {
			delete(d.remaining, p)
		}
		d.w.WriteUnknown(props, step, d.allInductiveCounterexamples(), d.runtime())
		d.broadcast(message.Unknown{Source: message.Director, Properties: props})
	}
}

func (d *Director) handleBaseStep(bm message.BaseStep) {
	d.baseStep = bm.Step
	if len(bm.Properties) > 0 {
		d.w.WriteBaseStep(bm.Properties, bm.Step)
	}
}

// isCompletelyUnknown reports whether every proof-engine tracker (disabled
// engines are pre-seeded at construction, see New) has given up on p.
func (d *Director) isCompletelyUnknown(p string) bool {
	if _, ok := d.bmcUnknowns[p]; !ok {
		return false
	}
	if _, ok := d.kIndUnknowns[p]; !ok {
		return false
	}
	if _, ok := d.pdrUnknowns[p]; !ok {
		return false
	}
	return true
}

// allInductiveCounterexamples returns a copy of every inductive
// counterexample collected so far, regardless of which properties are being
// committed in this report. This mirrors Director.java's
// convertInductiveCounterexamples(), which is handed to writeUnknown
// unfiltered rather than narrowed to the properties in the group just
// settled.
func (d *Director) allInductiveCounterexamples() map[string]counterexample.Counterexample {
	out := make(map[string]counterexample.Counterexample, len(d.inductiveCounterexamples))
	for p, cex := range d.inductiveCounterexamples {
		out[p] = cex
	}
	return out
}
