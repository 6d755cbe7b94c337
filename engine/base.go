package engine

import (
	"sync"

	"github.com/jkind-go/director/message"
)

// Publisher is how an engine reports results back to the Director. It is
// the engine-to-Director half of the MPSC mailbox described in spec §5.
type Publisher func(message.Message)

// base is embedded by every concrete engine. It supplies the
// inbox/stop/error bookkeeping common to all of them, the same
// select-over-channels shape the teacher project uses for its
// per-node goroutine loop (runner.nodeController.Main).
type base struct {
	name    message.EngineName
	publish Publisher

	inbox chan message.Message
	stop  chan struct{}
	once  sync.Once

	mu  sync.Mutex
	err error
}

func newBase(name message.EngineName, publish Publisher) base {
	return base{
		name:    name,
		publish: publish,
		inbox:   make(chan message.Message, 64),
		stop:    make(chan struct{}),
	}
}

func (b *base) Name() message.EngineName { return b.name }

// HandleMessage enqueues m for processing on the engine's own goroutine. It
// never blocks the caller (the Director's broadcast loop) on a slow engine
// beyond the inbox's buffer.
func (b *base) HandleMessage(m message.Message) {
	select {
	case b.inbox <- m:
	case <-b.stop:
	}
}

func (b *base) Stop() {
	b.once.Do(func() { close(b.stop) })
}

func (b *base) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *base) fail(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

func (b *base) stopped() bool {
	select {
	case <-b.stop:
		return true
	default:
		return false
	}
}
