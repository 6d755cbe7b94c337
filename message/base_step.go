package message

// BaseStep reports that BMC reached the given depth without refuting the
// named properties.
type BaseStep struct {
	Step       int
	Properties []string
}

func (BaseStep) isMessage() {}
