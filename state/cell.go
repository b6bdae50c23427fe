package state

// slot is the shared storage behind one or more Cell handles.
// borrows tracks outstanding access: 0 is free, n > 0 counts shared
// borrows, and exclusiveBorrow marks a single writer.
type slot[T any] struct {
	value   T
	borrows int
}

// exclusiveBorrow is the borrows value while a writer holds the slot.
const exclusiveBorrow = -1

// Cell is a shareable container with runtime-checked borrow rules.
//
// Copying a Cell copies the handle, not the value: every copy reads and
// writes the same storage. The zero Cell is not usable; create cells with
// New. Cells are confined to a single goroutine (the run loop); borrow
// accounting is deliberately not atomic.
type Cell[T any] struct {
	s *slot[T]
}

// New creates a cell holding value.
func New[T any](value T) Cell[T] {
	return Cell[T]{s: &slot[T]{value: value}}
}

func (c Cell[T]) slot() *slot[T] {
	if c.s == nil {
		panic("state: use of zero Cell; create cells with state.New")
	}
	return c.s
}

func (s *slot[T]) acquireShared(op string) {
	if s.borrows == exclusiveBorrow {
		panic(&BorrowError{Op: op})
	}
	s.borrows++
}

func (s *slot[T]) acquireExclusive(op string) {
	if s.borrows != 0 {
		panic(&BorrowError{Op: op, Exclusive: true})
	}
	s.borrows = exclusiveBorrow
}

func (s *slot[T]) releaseShared() {
	s.borrows--
}

func (s *slot[T]) releaseExclusive() {
	s.borrows = 0
}

// Get returns a shallow copy of the current value. It takes a shared
// borrow only for the duration of the copy.
func (c Cell[T]) Get() T {
	s := c.slot()
	s.acquireShared("get")
	defer s.releaseShared()
	return s.value
}

// Set replaces the current value. It takes a momentary exclusive borrow.
func (c Cell[T]) Set(value T) {
	s := c.slot()
	s.acquireExclusive("set")
	defer s.releaseExclusive()
	s.value = value
}

// Update mutates the value in place. The cell is exclusively borrowed for
// the duration of fn; re-borrowing the same cell inside fn panics.
func (c Cell[T]) Update(fn func(*T)) {
	s := c.slot()
	s.acquireExclusive("update")
	defer s.releaseExclusive()
	fn(&s.value)
}

// Borrow takes a shared borrow and returns a read guard. Multiple shared
// borrows may be outstanding at once. The guard must be released.
func (c Cell[T]) Borrow() *Ref[T] {
	s := c.slot()
	s.acquireShared("borrow")
	return &Ref[T]{s: s}
}

// BorrowMut takes the exclusive borrow and returns a write guard. It
// panics if any borrow is outstanding. The guard must be released.
func (c Cell[T]) BorrowMut() *RefMut[T] {
	s := c.slot()
	s.acquireExclusive("borrow mut")
	return &RefMut[T]{s: s}
}

// Shares reports whether c and o are handles to the same storage.
func (c Cell[T]) Shares(o Cell[T]) bool {
	return c.s != nil && c.s == o.s
}

// Ref is a shared (read) borrow guard.
type Ref[T any] struct {
	s        *slot[T]
	released bool
}

// Value returns a pointer to the borrowed value. The pointee must not be
// mutated through a shared borrow.
func (r *Ref[T]) Value() *T {
	return &r.s.value
}

// Release returns the borrow. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.s.releaseShared()
}

// RefMut is an exclusive (write) borrow guard.
type RefMut[T any] struct {
	s        *slot[T]
	released bool
}

// Value returns a pointer to the borrowed value for mutation.
func (r *RefMut[T]) Value() *T {
	return &r.s.value
}

// Release returns the borrow. Releasing twice is a no-op.
func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.s.releaseExclusive()
}
