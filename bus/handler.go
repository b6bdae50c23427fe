package bus

import (
	"github.com/google/uuid"

	"github.com/dshills/snowui/state"
)

// Handler is the capability implemented by element types that react to
// messages of type T. The handler runs with exclusive access to its owning
// cell, so it may mutate the element freely; touching the owning cell
// again from inside HandleMessage is a borrow conflict.
//
// Returning a non-nil error aborts the remainder of the current dispatch
// walk.
type Handler[T Message] interface {
	HandleMessage(msg T, mctx *Context) error
}

// HandlerFunc registers a bare function for messages of type T. It is the
// ownerless form of registration used by code that has no element state.
type HandlerFunc[T Message] func(msg T, mctx *Context) error

// erasedHandler is the type-erased registration record stored in the
// handler table. invoke recovers the concrete message type; a failed
// recovery reports matched == false and the walk skips the entry silently.
type erasedHandler struct {
	id     string
	kind   Kind
	invoke func(msg Message, mctx *Context) (matched bool, err error)
}

// RegisterHandler registers the Handler[T] implementation of element type
// E for messages of kind KindOf[T], invoking it through the shared cell
// owner. The same (owner, T) pair may be registered any number of times;
// each registration is invoked independently.
//
// The type parameter P names *E and is inferred; call sites spell out T
// and E only.
func RegisterHandler[T Message, E any, P interface {
	*E
	Handler[T]
}](b *Bus, owner state.Cell[E]) error {
	if b.closed {
		return ErrBusClosed
	}
	kind := KindOf[T]()
	if kind == "" {
		return ErrInvalidKind
	}

	eh := &erasedHandler{
		id:   uuid.NewString(),
		kind: kind,
		invoke: func(msg Message, mctx *Context) (bool, error) {
			m, ok := msg.(T)
			if !ok {
				return false, nil
			}
			var err error
			owner.Update(func(e *E) {
				err = P(e).HandleMessage(m, mctx)
			})
			return true, err
		},
	}
	b.append(eh)
	return nil
}

// RegisterHandlerFunc registers fn for messages of kind KindOf[T].
func RegisterHandlerFunc[T Message](b *Bus, fn HandlerFunc[T]) error {
	if b.closed {
		return ErrBusClosed
	}
	if fn == nil {
		return ErrNilHandler
	}
	kind := KindOf[T]()
	if kind == "" {
		return ErrInvalidKind
	}

	eh := &erasedHandler{
		id:   uuid.NewString(),
		kind: kind,
		invoke: func(msg Message, mctx *Context) (bool, error) {
			m, ok := msg.(T)
			if !ok {
				return false, nil
			}
			return true, fn(m, mctx)
		},
	}
	b.append(eh)
	return nil
}

// append adds a registration to the handler table. Appending during a
// dispatch walk is a table mutation and panics with *state.BorrowError.
func (b *Bus) append(eh *erasedHandler) {
	w := b.handlers.BorrowMut()
	m := *w.Value()
	m[eh.kind] = append(m[eh.kind], eh)
	w.Release()

	b.logger.Debug("registered handler",
		"kind", eh.kind,
		"registration", eh.id)
}
