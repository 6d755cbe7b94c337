// Package message defines the closed set of events exchanged between the
// Director and its engines.
package message

// EngineName identifies the source (or destination) of a message.
type EngineName string

const (
	Director             EngineName = "director"
	BMC                   EngineName = "bmc"
	KInduction            EngineName = "kind"
	PDR                   EngineName = "pdr"
	InvariantGeneration   EngineName = "invgen"
	Smoothing             EngineName = "smoothing"
	Advice                EngineName = "advice"
	IvcReduction          EngineName = "ivcReduction"
	IvcReductionAll       EngineName = "allIvcs"
)

// Message is the closed sum type of events that flow between engines and the
// Director. Concrete variants are Valid, Invalid, InductiveCounterexample,
// Unknown, BaseStep and Invariant.
type Message interface {
	isMessage()
}

// Model is an opaque solver model: a mapping from variable name to the
// sequence of values it took across the steps of a run. Its true shape is
// determined by the (out of scope) solver backend; this module only ever
// threads it through to the counterexample package unchanged.
type Model map[string][]string

// Itinerary is an ordered, immutable list of further engine destinations
// attached to a routable message. A nil or empty Itinerary means the message
// is already terminal.
type Itinerary struct {
	destinations []EngineName
}

// NewItinerary builds an Itinerary from an ordered list of destinations.
func NewItinerary(destinations ...EngineName) Itinerary {
	if len(destinations) == 0 {
		return Itinerary{}
	}
	cp := make([]EngineName, len(destinations))
	copy(cp, destinations)
	return Itinerary{destinations: cp}
}

// NextDestination returns the head destination without consuming it, and
// whether one exists.
func (it Itinerary) NextDestination() (EngineName, bool) {
	if len(it.destinations) == 0 {
		return "", false
	}
	return it.destinations[0], true
}

// Advance returns a new Itinerary with the head destination removed.
func (it Itinerary) Advance() Itinerary {
	if len(it.destinations) == 0 {
		return it
	}
	return NewItinerary(it.destinations[1:]...)
}

// Terminal reports whether the itinerary has been exhausted.
func (it Itinerary) Terminal() bool {
	return len(it.destinations) == 0
}

// ValidItinerary builds the routing list a newly-published terminal Valid
// message must carry, mirroring Director.java's getValidMessageItinerary():
// IVC reduction first (if enabled), then all-IVCs extraction (if enabled),
// each only ever appended when its stage is actually configured to run.
func ValidItinerary(reduceIvc, allIvcs bool) Itinerary {
	var dests []EngineName
	if reduceIvc {
		dests = append(dests, IvcReduction)
	}
	if allIvcs {
		dests = append(dests, IvcReductionAll)
	}
	return NewItinerary(dests...)
}

// InvalidItinerary builds the routing list a newly-published terminal
// Invalid message must carry, mirroring Director.java's
// getInvalidMessageItinerary(): counterexample smoothing, if enabled.
func InvalidItinerary(smoothCounterexamples bool) Itinerary {
	if smoothCounterexamples {
		return NewItinerary(Smoothing)
	}
	return NewItinerary()
}
