package bus

import (
	"log/slog"

	"github.com/dshills/snowui/internal/log"
	"github.com/dshills/snowui/state"
)

// Bus routes typed messages to subscription endpoints and registered
// handlers. Both routing tables live in state cells, so the borrow rules
// of the cell govern table access: a dispatch walk holds shared borrows on
// both tables for its whole duration, which makes re-entrant Send legal
// and any table mutation from inside a handler (Subscribe, handler
// registration, receiver Close) a fatal borrow conflict.
//
// A Bus and everything registered on it are confined to one goroutine;
// the only cross-goroutine bridge is the Receiver. See the package
// documentation for the confinement contract.
type Bus struct {
	subs     state.Cell[map[Kind][]*endpoint]
	handlers state.Cell[map[Kind][]*erasedHandler]

	closed      bool
	pendingWarn int
	logger      *slog.Logger
	stats       Stats
}

// Stats holds counters for bus activity. Counters are maintained without
// synchronization under the single-goroutine confinement contract.
type Stats struct {
	// MessagesSent counts accepted Send calls, including re-entrant ones.
	MessagesSent uint64

	// SignalsQueued counts completion signals enqueued to receivers.
	SignalsQueued uint64

	// HandlersInvoked counts handler invocations that matched their
	// message type.
	HandlersInvoked uint64

	// HandlerErrors counts handler invocations that returned an error.
	HandlerErrors uint64

	// TypeMismatches counts dispatch attempts skipped because the
	// registered type did not match the concrete message.
	TypeMismatches uint64
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	cfg := busConfig{
		pendingWarn: defaultPendingWarn,
		logger:      log.Logger("bus"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bus{
		subs:        state.New(make(map[Kind][]*endpoint)),
		handlers:    state.New(make(map[Kind][]*erasedHandler)),
		pendingWarn: cfg.pendingWarn,
		logger:      cfg.logger,
	}
}

// Send delivers msg to every subscription endpoint of its kind, then walks
// the registered handlers of that kind in registration order, running each
// to completion before the next starts. Send returns only after the walk
// finishes.
//
// The walk aborts on the first handler error, which is returned wrapped in
// a *HandlerError. A message with no handlers is consumed without error.
// Handler panics are not recovered.
func (b *Bus) Send(msg Message) error {
	if b.closed {
		return ErrBusClosed
	}
	kind := msg.MessageKind()
	if kind == "" {
		return ErrInvalidKind
	}
	b.stats.MessagesSent++

	// Both tables stay borrowed until the walk completes. Mutating either
	// from inside a handler panics with *state.BorrowError.
	subsRef := b.subs.Borrow()
	defer subsRef.Release()
	handlersRef := b.handlers.Borrow()
	defer handlersRef.Release()

	for _, ep := range (*subsRef.Value())[kind] {
		ep.enqueue()
		b.stats.SignalsQueued++
	}

	queue := newDispatchQueue((*handlersRef.Value())[kind])
	mctx := &Context{}
	return b.drain(queue, msg, mctx)
}

// Close tears down the producer side: every subscription endpoint is
// closed (receivers drain their backlog, then observe ErrClosed) and all
// further Send, Subscribe and registration calls fail with ErrBusClosed.
// Closing from inside a dispatch walk is a table mutation and panics.
func (b *Bus) Close() {
	if b.closed {
		return
	}
	w := b.subs.BorrowMut()
	b.closed = true
	for _, eps := range *w.Value() {
		for _, ep := range eps {
			ep.close()
		}
	}
	*w.Value() = make(map[Kind][]*endpoint)
	w.Release()
}

// Closed reports whether Close has been called.
func (b *Bus) Closed() bool {
	return b.closed
}

// Stats returns a copy of the bus counters.
func (b *Bus) Stats() Stats {
	return b.stats
}

// handlerCount returns the number of registrations for kind. Test helper
// surface; holds a momentary shared borrow.
func (b *Bus) handlerCount(kind Kind) int {
	ref := b.handlers.Borrow()
	defer ref.Release()
	return len((*ref.Value())[kind])
}
