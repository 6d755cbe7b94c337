package message

// Invalid reports that a set of properties has been refuted by a
// counterexample of the given length.
type Invalid struct {
	Source     EngineName
	Properties []string
	Length     int
	Model      Model
	Itinerary  Itinerary
}

func (Invalid) isMessage() {}
