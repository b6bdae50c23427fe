// Package runloop executes posted tasks on one dedicated goroutine.
//
// State cells and buses are confined to the goroutine that owns them; the
// loop provides that goroutine. Any goroutine may call Post or Do, and the
// posted task runs on the loop goroutine in FIFO order, each task running
// to completion before the next starts.
package runloop

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultQueueSize = 1024

// Loop is a single-goroutine task executor.
//
// A task panic is not recovered and terminates the process; borrow
// conflicts inside tasks are programming errors.
type Loop struct {
	queueSize int

	mu      sync.Mutex
	queue   chan func()
	running atomic.Bool
	wg      sync.WaitGroup

	posted   atomic.Uint64
	executed atomic.Uint64
	dropped  atomic.Uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the task queue capacity.
func WithQueueSize(size int) Option {
	return func(l *Loop) {
		if size > 0 {
			l.queueSize = size
		}
	}
}

// New creates a stopped loop.
func New(opts ...Option) *Loop {
	l := &Loop{queueSize: defaultQueueSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start launches the loop goroutine.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running.Load() {
		return ErrAlreadyRunning
	}

	l.queue = make(chan func(), l.queueSize)
	l.running.Store(true)

	l.wg.Add(1)
	go l.run()
	return nil
}

// Stop shuts the loop down. Queued tasks drain before the loop goroutine
// exits. Stop returns when the goroutine is gone or ctx is done; on an
// early return the drain continues in the background.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	if !l.running.Load() {
		l.mu.Unlock()
		return ErrNotRunning
	}
	l.running.Store(false)
	close(l.queue)
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post queues fn for execution on the loop goroutine without blocking.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return ErrNilTask
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running.Load() {
		return ErrNotRunning
	}

	select {
	case l.queue <- fn:
		l.posted.Add(1)
		return nil
	default:
		l.dropped.Add(1)
		return ErrQueueFull
	}
}

// Do posts fn and waits for it to finish. When ctx expires first, Do
// returns the context error while fn may still run later. Calling Do from
// the loop goroutine deadlocks until ctx expires.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if fn == nil {
		return ErrNilTask
	}

	finished := make(chan struct{})
	err := l.Post(func() {
		defer close(finished)
		fn()
	})
	if err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Running reports whether the loop accepts tasks.
func (l *Loop) Running() bool {
	return l.running.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()
	for fn := range l.queue {
		fn()
		l.executed.Add(1)
	}
}

// Stats holds counters for loop activity. Unlike cells, these counters
// are read from any goroutine, so they are atomics.
type Stats struct {
	// Posted counts accepted tasks.
	Posted uint64

	// Executed counts completed tasks.
	Executed uint64

	// Dropped counts tasks rejected with ErrQueueFull.
	Dropped uint64
}

// Stats returns a snapshot of the loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Posted:   l.posted.Load(),
		Executed: l.executed.Load(),
		Dropped:  l.dropped.Load(),
	}
}
