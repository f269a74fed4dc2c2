package reconciler

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines.
type WorkerPool struct {
	tasks chan Task
	done  chan struct{}
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{
		tasks: make(chan Task, size),
		done:  make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.tasks:
			if err := task(); err != nil {
				zap.L().Error("reconcile task failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.done:
		return ErrPoolClosed
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.done:
		return ErrPoolClosed
	case wp.tasks <- task:
		return nil
	}
}

// Close stops the workers. Queued tasks that have not started are abandoned. Safe to call twice.
func (wp *WorkerPool) Close() {
	select {
	case <-wp.done:
	default:
		close(wp.done)
	}
}
