package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsSubmittedTasks(t *testing.T) {
	p := NewPool(4)

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			count.Add(1)
		})
	}
	wg.Wait()
	p.Stop()
	require.EqualValues(t, 100, count.Load())
}

func TestPoolStopDrainsQueue(t *testing.T) {
	p := NewPool(1)

	var count atomic.Int64
	for i := 0; i < 10; i++ {
		p.Submit(func() { count.Add(1) })
	}
	// Stop returns only after every queued task has run.
	p.Stop()
	require.EqualValues(t, 10, count.Load())
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	<-done
	p.Stop()
}

func TestPoolIgnoresNilTasks(t *testing.T) {
	p := NewPool(1)
	p.Submit(nil)
	ran := false
	p.Submit(func() { ran = true })
	p.Stop()
	require.True(t, ran)
}
