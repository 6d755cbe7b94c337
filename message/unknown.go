package message

// Unknown reports that the named engine has given up on a set of properties
// at the current base step.
type Unknown struct {
	Source     EngineName
	Properties []string
}

func (Unknown) isMessage() {}
