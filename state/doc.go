// Package state provides Cell, a shareable value container with
// runtime-checked borrow rules.
//
// A Cell behaves like a handle: copying it shares the underlying storage,
// so a component and its registered message handlers can observe each
// other's writes. Access follows the shared-xor-exclusive rule: any number
// of concurrent read borrows, or exactly one write borrow. Violations are
// programming errors and panic with *BorrowError rather than block.
//
// Cells are designed for single-goroutine use (everything that touches a
// cell runs on the application's run loop), so borrow accounting carries
// no synchronization cost.
//
// # Usage
//
//	count := state.New(0)
//	count.Update(func(n *int) { *n++ })
//	snapshot := count.Get()
//
//	// Scoped borrows for structured access:
//	ref := count.Borrow()
//	_ = *ref.Value()
//	ref.Release()
package state
