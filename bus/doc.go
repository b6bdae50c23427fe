// Package bus provides the typed message bus for snowui.
//
// The bus is the framework's communication backbone: elements publish typed
// messages and react to them without holding references to each other.
// Delivery is split into two independent surfaces that share one table key,
// the message Kind:
//
//	                  ┌─────────────────────────────────────────┐
//	   Send(msg) ───▶ │                  Bus                    │
//	                  │  subscriptions: Kind → []endpoint       │
//	                  │  handlers:      Kind → []erasedHandler  │
//	                  └─────────────────────────────────────────┘
//	                        │                        │
//	                        ▼                        ▼
//	              completion signals        dispatch queue
//	              (Receiver.Recv, may       (handlers run inline,
//	               cross goroutines)         in registration order)
//
// # Delivery model
//
// Send first enqueues one completion signal per subscription endpoint of
// the message's kind (non-blocking, unbounded backlog), then builds an
// explicit task queue with one entry per registered handler and drains it
// inline: each handler runs to completion before the next starts, and Send
// returns only after the queue empties. The first handler error aborts the
// remaining tasks. Handlers may call Send again; the nested walk drains its
// own queue before the outer one resumes.
//
// # Borrow discipline
//
// Both routing tables live in state cells. Send holds shared borrows on
// both tables for its whole duration, so the cell rules decide what is
// legal during a walk: re-entrant Send is fine (shared borrows stack),
// while Subscribe, handler registration, Close and Receiver.Close all need
// the exclusive borrow and panic with *state.BorrowError when attempted
// from inside a handler. The conflict is a programming error and is
// deliberately fatal.
//
// # Confinement
//
// A bus, its cells and its handlers are confined to a single goroutine,
// normally the application's run loop. The Receiver is the one structure
// built for crossing goroutines: a consumer may block in Recv elsewhere
// and post resulting work back onto the loop.
//
// # Messages and kinds
//
// A message is any type with a constant MessageKind. Kinds are dot-notation
// strings and are the only identity dispatch relies on:
//
//	type IncreaseClicked struct{}
//
//	func (IncreaseClicked) MessageKind() bus.Kind { return "click.increase" }
//
// # Basic usage
//
//	b := bus.New()
//
//	rx, err := bus.Subscribe[IncreaseClicked](b)
//	if err != nil { ... }
//
//	err = bus.RegisterHandler[IncreaseClicked, CounterText](b, cell)
//	if err != nil { ... }
//
//	if err := b.Send(IncreaseClicked{}); err != nil { ... }
//
//	// elsewhere, off the loop:
//	for rx.Recv(ctx) == nil {
//	    // one signal per delivered message; the payload is not carried
//	}
package bus
