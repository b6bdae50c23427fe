package bus

// dispatchTask is one pending handler invocation.
type dispatchTask struct {
	h *erasedHandler
}

// dispatchQueue is the explicit task queue for one Send call: one task per
// registered handler, drained front to back. A re-entrant Send builds its
// own queue and drains it to completion before the outer walk resumes, so
// nesting stays depth-first and every suspension point is a queue
// boundary.
type dispatchQueue struct {
	tasks []dispatchTask
	next  int
}

func newDispatchQueue(handlers []*erasedHandler) *dispatchQueue {
	q := &dispatchQueue{tasks: make([]dispatchTask, 0, len(handlers))}
	for _, h := range handlers {
		q.tasks = append(q.tasks, dispatchTask{h: h})
	}
	return q
}

func (q *dispatchQueue) pop() (dispatchTask, bool) {
	if q.next >= len(q.tasks) {
		return dispatchTask{}, false
	}
	t := q.tasks[q.next]
	q.next++
	return t, true
}

// drain runs queued tasks in order until the queue empties or a handler
// fails. The first failure aborts the remaining tasks.
func (b *Bus) drain(q *dispatchQueue, msg Message, mctx *Context) error {
	for {
		task, ok := q.pop()
		if !ok {
			return nil
		}

		matched, err := task.h.invoke(msg, mctx)
		if !matched {
			b.stats.TypeMismatches++
			b.logger.Debug("skipping handler: message type mismatch",
				"kind", task.h.kind,
				"registration", task.h.id)
			continue
		}
		b.stats.HandlersInvoked++
		if err != nil {
			b.stats.HandlerErrors++
			return &HandlerError{Kind: task.h.kind, HandlerID: task.h.id, Err: err}
		}
	}
}
