package element

import "github.com/dshills/snowui/state"

// Object is a node in the element tree. The set of implementations is
// closed: every node is one of the concrete types in this package, so
// consumers can type-switch over a tree exhaustively.
type Object interface {
	IntoObject

	// isObject seals the interface.
	isObject()
}

// IntoObject is implemented by anything that can become a tree node.
// Concrete nodes return themselves; user-defined elements implement it by
// delegating to Finalize.
type IntoObject interface {
	IntoObject() Object
}

// Tagged is implemented by user elements that participate in handler
// registration. The tag is a stable identifier matched against registry
// descriptors; it must not change between releases.
type Tagged interface {
	ElementTag() string
}

// List converts a mixed set of elements into a child list.
func List(items ...IntoObject) []Object {
	children := make([]Object, 0, len(items))
	for _, it := range items {
		children = append(children, it.IntoObject())
	}
	return children
}

// FromState snapshots the cell's current value into a tree node. Later
// changes to the cell do not alter the returned object.
func FromState[E IntoObject](c state.Cell[E]) Object {
	return c.Get().IntoObject()
}
