package snowui

import (
	"github.com/dshills/snowui/bus"
	"github.com/dshills/snowui/element"
	"github.com/dshills/snowui/registry"
	"github.com/dshills/snowui/state"
)

// Bus returns the process-wide default bus.
func Bus() *bus.Bus {
	return bus.Default()
}

// Send posts msg on the default bus.
func Send(msg bus.Message) error {
	return bus.Default().Send(msg)
}

// Subscribe opens a receiver for T on the default bus.
func Subscribe[T bus.Message]() (*bus.Receiver[T], error) {
	return bus.Subscribe[T](bus.Default())
}

// RegisterHandler declares that instances of element E handle messages of
// type T. The declaration lands in the default registry; a bus handler is
// installed on the default bus for each instance promoted by
// element.Finalize.
//
// E's tag must be derivable from its zero value. The handler method lives
// on *E, which the P parameter captures; callers supply T and E and leave
// P inferred:
//
//	snowui.RegisterHandler[IncreaseClicked, CounterText]()
func RegisterHandler[T bus.Message, E element.Tagged, P interface {
	*E
	bus.Handler[T]
}]() {
	var zero E
	tag := zero.ElementTag()
	registry.Default().Register(registry.Descriptor{
		Element: tag,
		Install: registry.Install(func(c state.Cell[E]) {
			if err := bus.RegisterHandler[T, E, P](bus.Default(), c); err != nil {
				logger.Error("handler installation failed",
					"element", tag, "kind", bus.KindOf[T](), "err", err)
			}
		}),
	})
}
