package bus

// Kind identifies a message type on the wire of the bus. Kinds are stable
// string tags in dot notation (for example "click.increase") and serve as
// the table key for subscriptions and handlers; dispatch never depends on
// open-ended runtime type identity.
//
// Two Go types may declare the same Kind. Typed delivery recovers the
// concrete type with a checked assertion, so a collision degrades to a
// silent skip rather than a failure.
type Kind string

// String returns the kind as a plain string.
func (k Kind) String() string {
	return string(k)
}

// Message is implemented by any value that can travel on the bus.
// MessageKind must be derivable from the zero value: implement it as a
// constant method on the value receiver.
type Message interface {
	MessageKind() Kind
}

// KindOf returns the kind declared by message type T.
func KindOf[T Message]() Kind {
	var zero T
	return zero.MessageKind()
}
