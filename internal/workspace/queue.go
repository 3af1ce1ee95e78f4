package workspace

import "sync"

// Queue serializes external events (text changed, file created/changed/
// deleted, configuration changed) onto a single worker goroutine. Each task
// runs to completion before the next begins, so registry and cache mutations
// triggered by events never interleave and need no ordering guarantees
// between themselves.
type Queue struct {
	tasks     chan func()
	closeOnce sync.Once
	done      chan struct{}
}

// NewQueue starts the worker goroutine with the given task buffer size.
func NewQueue(buffer int) *Queue {
	q := &Queue{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for task := range q.tasks {
		task()
	}
}

// Enqueue submits a task. Blocks when the buffer is full, which applies
// natural backpressure to event storms.
func (q *Queue) Enqueue(task func()) {
	q.tasks <- task
}

// Drain blocks until every task enqueued before the call has completed.
func (q *Queue) Drain() {
	settled := make(chan struct{})
	q.Enqueue(func() { close(settled) })
	<-settled
}

// Close stops accepting tasks and waits for the worker to finish the ones
// already queued. Safe to call more than once.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.tasks)
	})
	<-q.done
}
