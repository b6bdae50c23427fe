package registry_test

import (
	"testing"

	"github.com/dshills/snowui/registry"
	"github.com/dshills/snowui/state"
)

type widget struct {
	clicks int
}

func TestRegisterAndHasHandlers(t *testing.T) {
	r := registry.New()

	r.Register(registry.Descriptor{
		Element: "widget",
		Install: func(any) {},
	})

	if !r.HasHandlers("widget") {
		t.Error("HasHandlers('widget') = false after Register")
	}
	if r.HasHandlers("missing") {
		t.Error("HasHandlers('missing') = true for unregistered tag")
	}
	if got := r.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestRegisterValidation(t *testing.T) {
	r := registry.New()

	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	expectPanic("empty element", func() {
		r.Register(registry.Descriptor{Element: "", Install: func(any) {}})
	})
	expectPanic("nil install", func() {
		r.Register(registry.Descriptor{Element: "widget", Install: nil})
	})
}

func TestInstallForInstanceRunsInOrder(t *testing.T) {
	r := registry.New()

	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		r.Register(registry.Descriptor{
			Element: "widget",
			Install: func(any) { order = append(order, name) },
		})
	}

	n := r.InstallForInstance("widget", state.New(widget{}))
	if n != 3 {
		t.Errorf("InstallForInstance returned %d, want 3", n)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("install order = %v, want [a b c]", order)
	}
}

func TestInstallForInstanceUnknownTag(t *testing.T) {
	r := registry.New()
	if n := r.InstallForInstance("missing", state.New(widget{})); n != 0 {
		t.Errorf("InstallForInstance on unknown tag returned %d, want 0", n)
	}
}

func TestDuplicateDescriptorsBothRun(t *testing.T) {
	r := registry.New()

	runs := 0
	d := registry.Descriptor{
		Element: "widget",
		Install: func(any) { runs++ },
	}
	r.Register(d)
	r.Register(d)

	if n := r.InstallForInstance("widget", state.New(widget{})); n != 2 {
		t.Errorf("InstallForInstance returned %d, want 2", n)
	}
	if runs != 2 {
		t.Errorf("install ran %d times, want 2", runs)
	}
}

func TestInstallAdapterRecoversCellType(t *testing.T) {
	cell := state.New(widget{})

	var got bool
	fn := registry.Install(func(c state.Cell[widget]) {
		got = c.Shares(cell)
	})

	fn(cell)
	if !got {
		t.Error("adapter did not pass the same cell through")
	}
}

func TestInstallAdapterIgnoresForeignInstance(t *testing.T) {
	called := false
	fn := registry.Install(func(state.Cell[widget]) { called = true })

	fn(state.New("not a widget"))
	fn(42)
	fn(nil)

	if called {
		t.Error("adapter ran for a foreign instance type")
	}
}

func TestTagsSorted(t *testing.T) {
	r := registry.New()
	for _, tag := range []string{"zeta", "alpha", "mid"} {
		r.Register(registry.Descriptor{Element: tag, Install: func(any) {}})
	}

	tags := r.Tags()
	want := []string{"alpha", "mid", "zeta"}
	if len(tags) != len(want) {
		t.Fatalf("Tags() = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("Tags() = %v, want %v", tags, want)
		}
	}
}

func TestSetDefaultSwapsRegistry(t *testing.T) {
	isolated := registry.New()
	prev := registry.SetDefault(isolated)
	defer registry.SetDefault(prev)

	if registry.Default() != isolated {
		t.Fatal("Default() did not return the swapped-in registry")
	}

	isolated.Register(registry.Descriptor{Element: "widget", Install: func(any) {}})
	if !registry.Default().HasHandlers("widget") {
		t.Error("registration did not land in the swapped-in registry")
	}
}
