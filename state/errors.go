package state

import "errors"

// Sentinel errors for borrow-rule violations.
var (
	// ErrBorrowConflict is the base error for all borrow-rule violations.
	ErrBorrowConflict = errors.New("borrow conflict")
)

// BorrowError is the panic payload raised when a cell's borrow rules are
// violated. A cell admits any number of shared borrows or exactly one
// exclusive borrow; mixing the two, or nesting exclusive access, is fatal.
type BorrowError struct {
	// Op is the operation that violated the rules ("borrow", "borrow mut",
	// "get", "set", "update").
	Op string

	// Exclusive reports whether the failed operation needed exclusive access.
	Exclusive bool
}

// Error implements the error interface.
func (e *BorrowError) Error() string {
	if e.Exclusive {
		return "state: " + e.Op + ": cell is already borrowed"
	}
	return "state: " + e.Op + ": cell is already mutably borrowed"
}

// Is allows errors.Is to match BorrowError with ErrBorrowConflict.
func (e *BorrowError) Is(target error) bool {
	return target == ErrBorrowConflict
}
