// Package queue admits work to the terminal transport: priority ordering,
// bounded parallelism, coalescing of identical in-flight calls, and
// backpressure when depth is saturated.
package queue

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/tradewire/mt5bridge/go/classify"
)

// ErrQueueFull signals admission backpressure: the caller should wait,
// rate-reduce, or shed load. It is a signal, not a bug.
var ErrQueueFull = errors.New("request queue is full")

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("request queue is closed")

var (
	depthGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mt5bridge_queue_depth",
		Help: "Requests waiting for a dispatch slot.",
	})
	inflightGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mt5bridge_queue_inflight",
		Help: "Requests currently executing.",
	})
	submittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mt5bridge_queue_submitted_total",
		Help: "Requests admitted to the queue, by priority.",
	}, []string{"priority"})
	coalescedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mt5bridge_queue_coalesced_total",
		Help: "Submissions deduplicated onto an in-flight request.",
	})
	rejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mt5bridge_queue_rejected_total",
		Help: "Submissions rejected by depth backpressure.",
	})
)

// Work produces the result of one queued request. It is invoked exactly once
// per admitted request.
type Work func(ctx context.Context) (interface{}, error)

// Future resolves exactly once with the result of a queued request.
// Coalesced submitters share a single Future.
type Future struct {
	done chan struct{}
	val  interface{}
	err  error
}

func newFuture() *Future { return &Future{done: make(chan struct{})} }

// Wait blocks until the request completes or |ctx| is done.
func (f *Future) Wait(ctx context.Context) (interface{}, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel closed when the Future resolves.
func (f *Future) Done() <-chan struct{} { return f.done }

func (f *Future) resolve(val interface{}, err error) {
	f.val, f.err = val, err
	close(f.done)
}

type request struct {
	priority   int
	enqueuedAt time.Time
	seq        uint64
	key        string
	work       Work
	future     *Future
}

// requestHeap orders by priority (lower first), then by enqueue sequence.
type requestHeap []*request

func (h requestHeap) Len() int { return len(h) }
func (h requestHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h requestHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *requestHeap) Push(x interface{}) { *h = append(*h, x.(*request)) }
func (h *requestHeap) Pop() interface{} {
	var old = *h
	var n = len(old)
	var item = old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is the admission gate in front of the transport.
type Queue struct {
	maxDepth int

	mu       sync.Mutex
	heap     requestHeap
	coalesce map[string]*Future
	seq      uint64
	closed   bool
	ready    chan struct{} // Wakes the dispatcher; capacity 1.

	sem      *semaphore.Weighted
	runCtx   context.Context
	runStop  context.CancelFunc
	inflight sync.WaitGroup
	dispatch sync.WaitGroup
}

// New starts a Queue with the given depth and concurrency bounds and its
// single background dispatcher.
func New(maxDepth, maxConcurrent int) *Queue {
	var ctx, stop = context.WithCancel(context.Background())
	var q = &Queue{
		maxDepth: maxDepth,
		coalesce: make(map[string]*Future),
		ready:    make(chan struct{}, 1),
		sem:      semaphore.NewWeighted(int64(maxConcurrent)),
		runCtx:   ctx,
		runStop:  stop,
	}
	q.dispatch.Add(1)
	go q.run()
	return q
}

// Submit admits |work| under the priority of |op|. When |coalesceKey| is
// non-empty and an identical request is already queued or in flight, the
// existing Future is returned and |work| is discarded. Orders are never
// coalesced; the orchestrator always passes an empty key.
func (q *Queue) Submit(op, coalesceKey string, work Work) (*Future, error) {
	var priority = priorityFor(classify.OperationCriticality(op))

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil, ErrClosed
	}
	if coalesceKey != "" {
		if f, ok := q.coalesce[coalesceKey]; ok {
			q.mu.Unlock()
			coalescedTotal.Inc()
			return f, nil
		}
	}
	if len(q.heap) >= q.maxDepth {
		q.mu.Unlock()
		rejectedTotal.Inc()
		return nil, ErrQueueFull
	}

	q.seq++
	var req = &request{
		priority:   priority,
		enqueuedAt: time.Now(),
		seq:        q.seq,
		key:        coalesceKey,
		work:       work,
		future:     newFuture(),
	}
	heap.Push(&q.heap, req)
	if coalesceKey != "" {
		q.coalesce[coalesceKey] = req.future
	}
	depthGauge.Set(float64(len(q.heap)))
	q.mu.Unlock()

	submittedTotal.WithLabelValues(priorityName(priority)).Inc()
	select {
	case q.ready <- struct{}{}:
	default:
	}
	return req.future, nil
}

// run is the single dispatcher: it pops the highest-priority request,
// takes a concurrency permit, and executes the work on its own goroutine.
// It does not wait for execution before picking the next item.
func (q *Queue) run() {
	defer q.dispatch.Done()

	for {
		var req = q.pop()
		if req == nil {
			select {
			case <-q.ready:
				continue
			case <-q.runCtx.Done():
				return
			}
		}

		if err := q.sem.Acquire(q.runCtx, 1); err != nil {
			q.forget(req.key)
			req.future.resolve(nil, err)
			return
		}

		q.inflight.Add(1)
		inflightGauge.Inc()
		go func(req *request) {
			defer func() {
				q.sem.Release(1)
				q.inflight.Done()
				inflightGauge.Dec()
			}()
			var val, err = req.work(q.runCtx)
			// Drop the coalesce entry before waking waiters: a caller that
			// re-submits the key the instant Wait returns must run fresh,
			// not receive this already-resolved future.
			q.forget(req.key)
			req.future.resolve(val, err)
		}(req)
	}
}

func (q *Queue) pop() *request {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 {
		return nil
	}
	var req = heap.Pop(&q.heap).(*request)
	depthGauge.Set(float64(len(q.heap)))
	return req
}

// forget removes a coalesce entry. It runs before the request's future
// resolves, so a waiter woken by the result always submits fresh.
func (q *Queue) forget(key string) {
	if key == "" {
		return
	}
	q.mu.Lock()
	delete(q.coalesce, key)
	q.mu.Unlock()
}

// Close stops admission, cancels the dispatcher, drains in-flight work,
// and fails any requests still waiting for a slot.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	var pending = q.heap
	q.heap = nil
	q.coalesce = make(map[string]*Future)
	q.mu.Unlock()

	q.runStop()
	q.dispatch.Wait()
	q.inflight.Wait()
	depthGauge.Set(0)

	for _, req := range pending {
		req.future.resolve(nil, ErrClosed)
	}
	log.Debug("request queue closed")
}

// Depth returns the number of requests waiting for a slot.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.heap)
}

func priorityFor(c classify.Criticality) int {
	switch c {
	case classify.Critical:
		return 0
	case classify.High:
		return 1
	case classify.Normal:
		return 2
	default:
		return 3
	}
}

func priorityName(p int) string {
	switch p {
	case 0:
		return "critical"
	case 1:
		return "high"
	case 2:
		return "normal"
	default:
		return "low"
	}
}
