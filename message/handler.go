package message

// Handler is implemented by anything that can receive messages: the
// Director itself, and every engine.
type Handler interface {
	HandleMessage(m Message)
}
