package message

// InductiveCounterexample is a counterexample to the inductive step of
// k-induction that does not refute the property; purely informational, kept
// around so it can be surfaced alongside a later Unknown verdict.
type InductiveCounterexample struct {
	Properties []string
	Length     int
	Model      Model
}

func (InductiveCounterexample) isMessage() {}
