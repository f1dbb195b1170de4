// Package concurrency bounds how many jobs run at once.
package concurrency

import "sync"

type Pool struct {
	queue chan struct{}
	wg    sync.WaitGroup
	jobs  int
}

// NewPool returns a pool running at most size jobs at a time. A size of zero or less
// means no bound.
func NewPool(size int) *Pool {
	if size < 0 {
		size = 0
	}
	return &Pool{
		jobs:  size,
		queue: make(chan struct{}, size),
	}
}

// Enqueue blocks until a slot is free, then runs job in its own goroutine.
func (p *Pool) Enqueue(job func(params ...any), params ...any) {
	p.wg.Add(1)
	if p.jobs == 0 {
		go func() {
			defer p.wg.Done()
			job(params...)
		}()
		return
	}
	p.queue <- struct{}{}
	go func() {
		defer func() {
			<-p.queue
			p.wg.Done()
		}()
		job(params...)
	}()
}

// Wait blocks until every enqueued job has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
