package runloop

import "errors"

var (
	// ErrAlreadyRunning is returned when Start is called on a running loop.
	ErrAlreadyRunning = errors.New("run loop is already running")

	// ErrNotRunning is returned when tasks are posted to a stopped loop.
	ErrNotRunning = errors.New("run loop is not running")

	// ErrQueueFull is returned when the task queue cannot accept more work.
	ErrQueueFull = errors.New("run loop queue is full")

	// ErrNilTask is returned when a nil func is posted.
	ErrNilTask = errors.New("run loop task is nil")
)
