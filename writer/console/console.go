package console

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/message"
)

// Writer is the interactive console writer. When interactive is true it
// drives a bubbletea program with the alt screen; when false (embedded,
// miniJkind mode) it writes plain lines directly, matching the original
// ConsoleWriter's non-interactive fallback for embedded callers.
type Writer struct {
	interactive bool
	program     *tea.Program
	done        chan struct{}

	plain strings.Builder
}

// New creates a console Writer. interactive selects the live bubbletea view;
// pass false for miniJkind embedded runs.
func New(interactive bool) *Writer {
	return &Writer{interactive: interactive}
}

func (w *Writer) Begin() {
	if !w.interactive {
		w.plain.WriteString("=== analysis started ===\n")
		return
	}
	w.program = tea.NewProgram(newModel(), tea.WithAltScreen())
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		_, _ = w.program.Run()
	}()
}

func (w *Writer) send(kind, title, format string, args ...interface{}) {
	if !w.interactive {
		fmt.Fprintf(&w.plain, "%s: "+format+"\n", append([]interface{}{title}, args...)...)
		return
	}
	w.program.Send(formatRow(kind, title, format, args...))
}

func (w *Writer) WriteValid(properties []string, source message.EngineName, k int, proofTime time.Duration, runtime time.Duration, invariants []string, ivc []string, allIvcs []message.AllIVC, mivcTimedOut bool) {
	w.send("valid", fmt.Sprintf("VALID %v", properties), "[%.3fs] source=%s, k=%d", runtime.Seconds(), source, k)
}

func (w *Writer) WriteInvalid(property string, source message.EngineName, cex counterexample.Counterexample, runtime time.Duration) {
	w.send("invalid", fmt.Sprintf("INVALID %s", property), "[%.3fs] source=%s, length=%d", runtime.Seconds(), source, cex.Length)
}

func (w *Writer) WriteUnknown(properties []string, baseStep int, inductiveCex map[string]counterexample.Counterexample, runtime time.Duration) {
	w.send("unknown", fmt.Sprintf("UNKNOWN %v", properties), "[%.3fs] baseStep=%d", runtime.Seconds(), baseStep)
}

func (w *Writer) WriteBaseStep(properties []string, baseStep int) {
	w.send("basestep", fmt.Sprintf("base step %d", baseStep), "properties=%v", properties)
}

func (w *Writer) End() {
	if !w.interactive {
		w.plain.WriteString("=== analysis complete ===\n")
		return
	}
	w.program.Send(quitMsg{})
	<-w.done
}

func (w *Writer) String() string {
	return w.plain.String()
}
