// Package writer defines the Director's output sink contract and provides
// the concrete writers selected by configuration.
package writer

import (
	"time"

	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/message"
)

// Writer is the Director's output sink. Begin is called exactly once before
// any write, End exactly once after the last write.
type Writer interface {
	Begin()
	WriteValid(properties []string, source message.EngineName, k int, proofTime time.Duration, runtime time.Duration, invariants []string, ivc []string, allIvcs []message.AllIVC, mivcTimedOut bool)
	WriteInvalid(property string, source message.EngineName, cex counterexample.Counterexample, runtime time.Duration)
	WriteUnknown(properties []string, baseStep int, inductiveCex map[string]counterexample.Counterexample, runtime time.Duration)
	WriteBaseStep(properties []string, baseStep int)
	End()
	String() string
}
