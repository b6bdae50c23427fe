package snowui

import (
	"fmt"
	"testing"

	"github.com/dshills/snowui/bus"
	"github.com/dshills/snowui/element"
	"github.com/dshills/snowui/registry"
	"github.com/dshills/snowui/state"
)

type bumped struct{}

func (bumped) MessageKind() bus.Kind { return "facade.test.bumped" }

// tally is a user element with a registered handler.
type tally struct {
	N int
}

func (tally) ElementTag() string { return "facade.test.tally" }

func (tl *tally) HandleMessage(bumped, *bus.Context) error {
	tl.N++
	return nil
}

func snapshotTally(tl tally) element.Object {
	return element.Text{Text: fmt.Sprintf("tally=%d", tl.N)}
}

// isolate swaps in a fresh default bus and registry for one test.
func isolate(t *testing.T) {
	t.Helper()
	prevBus := bus.SetDefault(bus.New())
	prevReg := registry.SetDefault(registry.New())
	t.Cleanup(func() {
		bus.SetDefault(prevBus)
		registry.SetDefault(prevReg)
	})
}

func TestRegisterHandlerDeclares(t *testing.T) {
	isolate(t)

	RegisterHandler[bumped, tally]()

	if !registry.Default().HasHandlers("facade.test.tally") {
		t.Fatal("declaration did not land in the default registry")
	}
}

func TestPromotedInstanceHandlesMessages(t *testing.T) {
	isolate(t)

	RegisterHandler[bumped, tally]()

	// A second descriptor captures the promoted cell for inspection.
	var cell state.Cell[tally]
	registry.Default().Register(registry.Descriptor{
		Element: "facade.test.tally",
		Install: registry.Install(func(c state.Cell[tally]) { cell = c }),
	})

	rx, err := Subscribe[bumped]()
	if err != nil {
		t.Fatal(err)
	}

	obj := element.Finalize(tally{}, snapshotTally)

	for i := 0; i < 2; i++ {
		if err := Send(bumped{}); err != nil {
			t.Fatalf("Send #%d error: %v", i+1, err)
		}
	}

	if got := cell.Get().N; got != 2 {
		t.Errorf("promoted tally = %d, want 2", got)
	}
	if txt := obj.(element.Text); txt.Text != "tally=0" {
		t.Errorf("snapshot = %q, want finalization-time %q", txt.Text, "tally=0")
	}
	if got := rx.Pending(); got != 2 {
		t.Errorf("subscriber Pending = %d, want 2", got)
	}
}

func TestTwoInstancesHandleIndependently(t *testing.T) {
	isolate(t)

	RegisterHandler[bumped, tally]()

	var cells []state.Cell[tally]
	registry.Default().Register(registry.Descriptor{
		Element: "facade.test.tally",
		Install: registry.Install(func(c state.Cell[tally]) {
			cells = append(cells, c)
		}),
	})

	element.Finalize(tally{}, snapshotTally)
	element.Finalize(tally{}, snapshotTally)

	if err := Send(bumped{}); err != nil {
		t.Fatal(err)
	}

	if len(cells) != 2 {
		t.Fatalf("promoted %d instances, want 2", len(cells))
	}
	if cells[0].Shares(cells[1]) {
		t.Fatal("instances share a cell")
	}
	for i, c := range cells {
		if got := c.Get().N; got != 1 {
			t.Errorf("instance %d handled %d messages, want 1", i, got)
		}
	}
}

func TestBusAccessor(t *testing.T) {
	isolate(t)

	if Bus() != bus.Default() {
		t.Error("Bus() does not return the default bus")
	}
}
