package bus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// endpoint is the producer-side half of a subscription. Delivery enqueues
// a completion signal without blocking; the backlog is unbounded. The
// endpoint is the one structure in the bus that is safe to touch from
// other goroutines, since receivers are consumed off the loop.
type endpoint struct {
	id   string
	kind Kind

	mu      sync.Mutex
	pending int
	closed  bool
	warned  bool

	// notify wakes a waiting receiver; capacity 1, best effort.
	notify chan struct{}

	warnAt int
	logger *slog.Logger
}

func newEndpoint(kind Kind, warnAt int, logger *slog.Logger) *endpoint {
	return &endpoint{
		id:     uuid.NewString(),
		kind:   kind,
		notify: make(chan struct{}, 1),
		warnAt: warnAt,
		logger: logger,
	}
}

// enqueue records one completion signal. Signals sent after close are
// dropped.
func (ep *endpoint) enqueue() {
	ep.mu.Lock()
	if ep.closed {
		ep.mu.Unlock()
		return
	}
	ep.pending++
	warn := ep.warnAt > 0 && !ep.warned && ep.pending >= ep.warnAt
	if warn {
		ep.warned = true
	}
	ep.mu.Unlock()

	if warn {
		ep.logger.Warn("slow receiver: signal backlog crossed threshold",
			"kind", ep.kind,
			"receiver", ep.id,
			"backlog", ep.warnAt)
	}
	ep.wake()
}

// close tears down the producer side. Queued signals stay consumable.
func (ep *endpoint) close() {
	ep.mu.Lock()
	if ep.closed {
		ep.mu.Unlock()
		return
	}
	ep.closed = true
	ep.mu.Unlock()
	ep.wake()
}

func (ep *endpoint) wake() {
	select {
	case ep.notify <- struct{}{}:
	default:
	}
}

// recv takes one queued signal, blocking until one arrives, the endpoint
// closes, or ctx is done. Queued signals drain before the closed state is
// reported.
func (ep *endpoint) recv(ctx context.Context) error {
	for {
		ep.mu.Lock()
		if ep.pending > 0 {
			ep.pending--
			again := ep.pending > 0 || ep.closed
			ep.mu.Unlock()
			if again {
				ep.wake()
			}
			return nil
		}
		if ep.closed {
			ep.mu.Unlock()
			return ErrClosed
		}
		ep.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ep.notify:
		}
	}
}

func (ep *endpoint) pendingCount() int {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return ep.pending
}

// Receiver is the consumer half of a subscription to messages of type T.
// Each delivered message of that kind yields exactly one completion
// signal; the message value itself is not carried. A Receiver is intended
// for a single consuming goroutine.
type Receiver[T Message] struct {
	ep  *endpoint
	bus *Bus
}

// Subscribe registers a new subscription endpoint for messages of kind
// KindOf[T] and returns its receiver. Subscribing from inside a dispatch
// walk is a table mutation and panics with *state.BorrowError.
func Subscribe[T Message](b *Bus) (*Receiver[T], error) {
	if b.closed {
		return nil, ErrBusClosed
	}
	kind := KindOf[T]()
	if kind == "" {
		return nil, ErrInvalidKind
	}

	ep := newEndpoint(kind, b.pendingWarn, b.logger)
	w := b.subs.BorrowMut()
	m := *w.Value()
	m[kind] = append(m[kind], ep)
	w.Release()

	return &Receiver[T]{ep: ep, bus: b}, nil
}

// Recv blocks until one completion signal is available and consumes it.
// It returns nil per signal, ErrClosed once the producer side is gone and
// the backlog is drained, or the context error if ctx ends first.
func (r *Receiver[T]) Recv(ctx context.Context) error {
	return r.ep.recv(ctx)
}

// Pending returns the number of queued, unconsumed signals.
func (r *Receiver[T]) Pending() int {
	return r.ep.pendingCount()
}

// Kind returns the message kind this receiver is subscribed to.
func (r *Receiver[T]) Kind() Kind {
	return r.ep.kind
}

// Close removes the subscription from the bus and closes the endpoint.
// Queued signals remain consumable; afterwards Recv returns ErrClosed.
// Closing from inside a dispatch walk is a table mutation and panics.
func (r *Receiver[T]) Close() {
	if !r.bus.closed {
		w := r.bus.subs.BorrowMut()
		m := *w.Value()
		eps := m[r.ep.kind]
		for i, ep := range eps {
			if ep == r.ep {
				m[r.ep.kind] = append(eps[:i:i], eps[i+1:]...)
				break
			}
		}
		w.Release()
	}
	r.ep.close()
}
