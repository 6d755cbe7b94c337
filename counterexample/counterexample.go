// Package counterexample provides the two pure functions the Director uses
// to turn a raw solver model into a human-meaningful counterexample. Model
// reconstruction (mapping an analysis-specification model back onto the
// user's specification) and extraction (picking out the trace for a single
// property) are algorithms belonging to the translation layer and are
// therefore out of scope; these are thin, deterministic stand-ins that
// preserve the shapes the Director depends on.
package counterexample

import (
	"github.com/jkind-go/director/message"
	"github.com/jkind-go/director/spec"
)

// Counterexample is a concrete trace: for each step up to Length, the
// per-variable values that witness the violation (or, for an inductive
// counterexample, the non-refuting trace).
type Counterexample struct {
	Property string
	Length   int
	Trace    message.Model
}

// Reconstruct maps a model produced against the analysis specification back
// onto the user-facing specification, for the named property at depth k.
// concrete distinguishes a genuine (refuting) counterexample from an
// inductive one used only for diagnostics; both take the same shape here
// since the real reconstruction algorithm is out of scope.
func Reconstruct(userSpec, analysisSpec spec.Specification, model message.Model, property string, k int, concrete bool) message.Model {
	_ = analysisSpec
	_ = property
	_ = concrete
	out := make(message.Model, len(model))
	for variable, values := range model {
		if !userSpec.Declares(variable) {
			continue
		}
		length := k + 1
		if len(values) < length {
			length = len(values)
		}
		out[variable] = append([]string(nil), values[:length]...)
	}
	return out
}

// Extract builds a Counterexample for property from an (already
// reconstructed) model truncated to k steps.
func Extract(userSpec spec.Specification, property string, k int, model message.Model) Counterexample {
	_ = userSpec
	return Counterexample{
		Property: property,
		Length:   k,
		Trace:    model,
	}
}
