package worker

import "sync"

// Task is a unit of background work.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines. Stop drains the
// queue and waits for in-flight tasks.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// NewPool starts a pool with n workers; n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
