package bus

import "errors"

// Sentinel errors for the message bus.
var (
	// ErrBusClosed is returned when operations are attempted on a closed bus.
	ErrBusClosed = errors.New("message bus is closed")

	// ErrClosed is returned by Receiver.Recv once the producer side has been
	// torn down and all queued signals have been drained. It is a normal
	// end-of-stream result, not a failure.
	ErrClosed = errors.New("receiver is closed")

	// ErrNilHandler is returned when a nil handler func is registered.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidKind is returned when a message declares an empty kind.
	ErrInvalidKind = errors.New("invalid message kind")
)

// HandlerError wraps an error returned by a message handler. The first
// failing handler aborts the remainder of the dispatch walk, so at most one
// HandlerError surfaces per Send.
type HandlerError struct {
	// Kind is the kind of the message being dispatched.
	Kind Kind

	// HandlerID identifies the registration whose handler failed.
	HandlerID string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "handler error for kind " + string(e.Kind) + " (registration " + e.HandlerID + "): " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
