// Package element defines the widget tree and the finalization hook that
// connects user elements to shared state and message handling.
//
// A tree is built from value nodes: containers (Board, Card, Row, Switch,
// Form) hold []Object children, leaves (Text, Button, TextClock,
// TextInput, Girl) carry their own fields. Object is a closed sum, so a
// renderer can type-switch over every node it will ever see.
//
// User elements are ordinary structs. They join a tree through Finalize,
// which decides between two construction paths:
//
//	no handlers registered  -> plain value conversion
//	handlers registered     -> promote to state.Cell, install handlers,
//	                           then snapshot the cell into the tree
//
// The snapshot taken by Finalize is deliberately a value copy. Handlers
// keep the promoted cell and mutate live state; the tree shows the state
// as of finalization. Rebuilding the tree re-reads the cells.
package element
