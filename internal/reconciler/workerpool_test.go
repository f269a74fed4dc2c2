package reconciler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "simple tasks",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
		{
			name:           "zero size falls back to one worker",
			numTasks:       3,
			numWorkers:     0,
			expectedErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var executed, errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						time.Sleep(20 * time.Millisecond)
						mu.Lock()
						executed++
						mu.Unlock()
						return nil
					}
				}(i)
				require.NoError(t, wp.AddTask(context.Background(), task))
			}

			wg.Wait()
			assert.Equal(t, tt.numTasks-tt.expectedErrors, executed)
			assert.Equal(t, tt.expectedErrors, errorCount)
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)
	// occupy the worker and fill the queue
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.Eventually(t, func() bool {
		return len(wp.tasks) == 0
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_Closed(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	wp.Close()

	err := wp.AddTask(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}
