package worker

import (
	"sync"

	"go.uber.org/zap"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// A panicking task is logged and does not take its worker down.
// A nil log discards the panic reports.
func NewPool(n int, log *zap.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &pool{jobs: make(chan Task), log: log}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("worker task panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	job()
}

type pool struct {
	jobs chan Task
	log  *zap.Logger
	wg   sync.WaitGroup
	once sync.Once
}

// Submit blocks until a worker picks the task up.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop waits for in-flight tasks; it is safe to call more than once.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
