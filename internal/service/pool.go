package service

import (
	"context"
	"sync"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Pool is a fixed-size worker pool with a bounded queue. Requests are
// dispatched onto it so the caller's goroutine is never the one blocked
// on store I/O; when the queue is full, Submit rejects instead of
// blocking.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts workers goroutines draining a queue of the given depth.
func NewPool(workers, queueDepth int) *Pool {
	p := &Pool{tasks: make(chan func(), queueDepth)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit enqueues a task, returning ErrQueueFull when the queue is
// saturated. Must not be called after Close.
func (p *Pool) Submit(task func()) error {
	select {
	case p.tasks <- task:
		return nil
	default:
		return types.ErrQueueFull
	}
}

// Close stops accepting work and waits for queued tasks to drain.
// Idempotent.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.tasks) })
	p.wg.Wait()
}

// dispatch runs fn on the pool and waits for its result or for the caller
// to abandon the request. An abandoned request keeps running on its
// worker; the result channel is buffered so delivery to a gone caller is
// a no-op and the result is simply discarded.
func dispatch[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	ch := make(chan result, 1)

	if err := p.Submit(func() {
		v, err := fn()
		ch <- result{value: v, err: err}
	}); err != nil {
		var zero T
		return zero, err
	}

	select {
	case r := <-ch:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
