package element

import (
	"github.com/dshills/snowui/registry"
	"github.com/dshills/snowui/state"
)

// Finalize completes construction of a user element and converts it into a
// tree node via snapshot.
//
// If the element is Tagged and the default registry holds descriptors for
// its tag, the instance is promoted into a state cell and every descriptor
// runs once against that cell before the snapshot is taken. Handlers
// installed this way share the promoted cell, so they observe and mutate
// live state; the returned object is a value snapshot and does not change
// with the cell afterwards.
//
// Elements without a tag, or without registered descriptors, convert by
// value and share no storage.
func Finalize[E any](e E, snapshot func(E) Object) Object {
	tagged, ok := any(e).(Tagged)
	if !ok {
		return snapshot(e)
	}
	reg := registry.Default()
	tag := tagged.ElementTag()
	if !reg.HasHandlers(tag) {
		return snapshot(e)
	}

	cell := state.New(e)
	reg.InstallForInstance(tag, cell)
	return snapshot(cell.Get())
}
