package message

// Invariant carries invariants learned by one engine for broadcast to the
// others. The Director itself does not act on these; see the Invariant case
// of Director.HandleMessage.
type Invariant struct {
	Invariants []string
}

func (Invariant) isMessage() {}
