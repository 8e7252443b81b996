package queue

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradewire/mt5bridge/go/classify"
)

func TestHeapOrdersByPriorityThenArrival(t *testing.T) {
	var h requestHeap
	var push = func(priority int, seq uint64) {
		heap.Push(&h, &request{priority: priority, seq: seq, future: newFuture()})
	}
	push(2, 1) // normal
	push(3, 2) // low
	push(0, 3) // critical
	push(2, 4) // normal, later
	push(0, 5) // critical, later
	push(1, 6) // high

	var order []uint64
	for h.Len() > 0 {
		order = append(order, heap.Pop(&h).(*request).seq)
	}
	// Criticals first in FIFO order, then high, then normals FIFO, then low.
	require.Equal(t, []uint64{3, 5, 6, 1, 4, 2}, order)
}

func TestQueueExecutesSubmittedWork(t *testing.T) {
	var q = New(10, 2)
	defer q.Close()

	var future, err = q.Submit("symbol_info", "", func(context.Context) (interface{}, error) {
		return "result", nil
	})
	require.NoError(t, err)

	var val, werr = future.Wait(context.Background())
	require.NoError(t, werr)
	require.Equal(t, "result", val)
}

func TestQueueBoundsConcurrency(t *testing.T) {
	var q = New(100, 2)
	defer q.Close()

	var active, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		var future, err = q.Submit("symbol_info", "", func(context.Context) (interface{}, error) {
			var n = atomic.AddInt64(&active, 1)
			for {
				var p = atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt64(&active, -1)
			return nil, nil
		})
		require.NoError(t, err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = future.Wait(context.Background())
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestQueueCoalescesIdenticalInflightReads(t *testing.T) {
	var q = New(10, 1)
	defer q.Close()

	// Hold the only permit so coalescing candidates stay queued.
	var release = make(chan struct{})
	var started = make(chan struct{})
	var _, err = q.Submit("symbols_total", "", func(context.Context) (interface{}, error) {
		close(started)
		<-release
		return nil, nil
	})
	require.NoError(t, err)
	<-started

	var executions int64
	var work = func(context.Context) (interface{}, error) {
		atomic.AddInt64(&executions, 1)
		return "shared", nil
	}
	first, err := q.Submit("account_info", "account_info", work)
	require.NoError(t, err)
	second, err := q.Submit("account_info", "account_info", work)
	require.NoError(t, err)
	require.Same(t, first, second)

	close(release)
	var val, werr = first.Wait(context.Background())
	require.NoError(t, werr)
	require.Equal(t, "shared", val)
	<-second.Done()
	require.Equal(t, int64(1), atomic.LoadInt64(&executions))

	// The key is forgotten before the future resolves, so a re-submission
	// the instant Wait returns gets a fresh execution, never the stale
	// already-resolved future.
	third, err := q.Submit("account_info", "account_info", work)
	require.NoError(t, err)
	require.NotSame(t, first, third)
	val, werr = third.Wait(context.Background())
	require.NoError(t, werr)
	require.Equal(t, "shared", val)
	require.Equal(t, int64(2), atomic.LoadInt64(&executions))
}

func TestQueueBackpressure(t *testing.T) {
	var q = New(3, 1)
	defer q.Close()

	var release = make(chan struct{})
	var started = make(chan struct{})
	var _, err = q.Submit("symbols_total", "", func(context.Context) (interface{}, error) {
		close(started)
		<-release
		return nil, nil
	})
	require.NoError(t, err)
	<-started

	// The dispatcher may hold at most one popped request waiting for a
	// permit, so depth+2 further submissions must hit the limit.
	var sawFull bool
	for i := 0; i < 5 && !sawFull; i++ {
		if _, err = q.Submit("symbol_info", "", func(context.Context) (interface{}, error) {
			return nil, nil
		}); err != nil {
			require.ErrorIs(t, err, ErrQueueFull)
			sawFull = true
		}
	}
	require.True(t, sawFull)
	close(release)
}

func TestQueueCloseFailsPendingWork(t *testing.T) {
	var q = New(10, 1)

	var release = make(chan struct{})
	var started = make(chan struct{})
	var blocker, err = q.Submit("symbols_total", "", func(context.Context) (interface{}, error) {
		close(started)
		<-release
		return "done", nil
	})
	require.NoError(t, err)
	<-started

	var waiting []*Future
	for i := 0; i < 3; i++ {
		f, serr := q.Submit("symbol_info", "", func(context.Context) (interface{}, error) {
			return nil, nil
		})
		require.NoError(t, serr)
		waiting = append(waiting, f)
	}

	close(release)
	q.Close()

	// The in-flight request completed; queued ones resolve with ErrClosed
	// (or completed if the dispatcher raced them in before shutdown).
	var val, werr = blocker.Wait(context.Background())
	require.NoError(t, werr)
	require.Equal(t, "done", val)
	for _, f := range waiting {
		if _, werr = f.Wait(context.Background()); werr != nil {
			require.True(t, errors.Is(werr, ErrClosed) || errors.Is(werr, context.Canceled),
				"unexpected error %v", werr)
		}
	}

	_, err = q.Submit("symbol_info", "", func(context.Context) (interface{}, error) { return nil, nil })
	require.ErrorIs(t, err, ErrClosed)
}

func TestPriorityFor(t *testing.T) {
	require.Equal(t, 0, priorityFor(classify.Critical))
	require.Equal(t, 1, priorityFor(classify.High))
	require.Equal(t, 2, priorityFor(classify.Normal))
	require.Equal(t, 3, priorityFor(classify.Low))
}
