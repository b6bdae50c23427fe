// Package snowui is a toy widget toolkit built around a typed message
// bus, borrow-checked shared state and an element tree assembled from
// value snapshots.
//
// # Architecture
//
// Three layers cooperate when a world is built:
//
//	┌──────────────────────────────────────────────────────────┐
//	│                     element.Finalize                     │
//	│   by-value conversion, or promotion to a state.Cell      │
//	└──────────────────────────────────────────────────────────┘
//	              │ promoted instances          │ snapshots
//	              ▼                             ▼
//	┌──────────────────────────┐     ┌──────────────────────────┐
//	│         registry         │     │       element tree       │
//	│  tag -> install funcs    │     │  value nodes, no shared  │
//	└──────────────────────────┘     │  storage                 │
//	              │ installs          └──────────────────────────┘
//	              ▼
//	┌──────────────────────────┐
//	│           bus            │
//	│  typed messages, signal  │
//	│  receivers, handlers     │
//	└──────────────────────────┘
//
// Handlers own their element through a state.Cell and mutate live state;
// the tree keeps the values it saw at finalization. Rebuilding the tree
// re-reads the cells.
//
// # Building a world
//
//	snowui.Launch(func() snowui.World {
//	    return snowui.World{
//	        Root: element.Board{
//	            Children: element.List(
//	                element.Text{Text: "hello"},
//	                element.Button{Text: "ok"},
//	            ),
//	        },
//	    }
//	})
//
// # Handling messages
//
// An element type declares a handler once at startup; every instance
// later promoted by Finalize gets it installed:
//
//	type Bumped struct{}
//
//	func (Bumped) MessageKind() bus.Kind { return "counter.bumped" }
//
//	type Counter struct{ N int }
//
//	func (Counter) ElementTag() string { return "example.Counter" }
//
//	func (c *Counter) HandleMessage(msg Bumped, mctx *bus.Context) error {
//	    c.N++
//	    return nil
//	}
//
//	func init() {
//	    snowui.RegisterHandler[Bumped, Counter]()
//	}
//
// # Confinement
//
// Cells and buses belong to one goroutine; runloop.Loop provides it.
// Other goroutines hand work to that goroutine with Post, or wait on bus
// signals through a Receiver, which is the only cross-goroutine bridge.
//
// # Subpackages
//
//   - state: shared cells with runtime borrow accounting
//   - bus: typed messages, handlers and completion-signal receivers
//   - registry: element tag to handler-installation table
//   - element: tree nodes, behavior contracts and Finalize
//   - runloop: single-goroutine task loop that hosts a world
package snowui
