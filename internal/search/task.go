// internal/search/task.go
package search

import "context"

// Task is a search running in the background.
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	rep    Report
	err    error
}

// Start launches s.Search on its own goroutine. Cancelling ctx or calling
// Cancel stops it; other work is unaffected.
func Start(ctx context.Context, s Searcher, q Query) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(t.done)
		defer cancel()
		t.rep, t.err = s.Search(ctx, q)
	}()
	return t
}

// Done is closed once the search has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel stops the search. It is safe to call more than once.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the search finishes or ctx is done. Giving up on ctx
// does not cancel the task.
func (t *Task) Wait(ctx context.Context) (Report, error) {
	select {
	case <-t.done:
		return t.rep, t.err
	case <-ctx.Done():
		return Report{}, ctx.Err()
	}
}
