// Package workerpool implements a fixed-size worker pool with a
// post-work queue for marshalling results back to a driving thread,
// grounded on the source's udWorkerPool: udWorkerPool_DoWork's 100ms
// semaphore poll (so shutdown stays responsive without busy-waiting), the
// active-thread bracket around task execution, and udWorkerPool_AddTask's
// direct-to-post-queue shortcut when a task has no work function at all.
package workerpool

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/safedeque"
	"github.com/kenchrcum/udcore-go/udthread"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

// pollInterval mirrors the source's 100ms semaphore wait in
// udWorkerPool_DoWork, chosen so Destroy doesn't have to wait long for a
// worker to notice the pool has stopped.
const pollInterval = 100 * time.Millisecond

// Task is a unit of work: Fn runs on a pool worker, and if non-nil its
// return value is handed to PostFn, which runs only when the driving
// thread calls DoPostWork. A task with a nil Fn and a non-nil PostFn skips
// straight to the post queue, matching udWorkerPool_AddTask.
type Task struct {
	Fn     func(ctx context.Context) (any, error)
	PostFn func(val any, err error)
}

type postResult struct {
	val any
	err error
	fn  func(val any, err error)
}

// Pool is a fixed-size worker pool.
type Pool struct {
	tasks         *safedeque.Deque[Task]
	postTasks     *safedeque.Deque[postResult]
	sem           *udthread.Semaphore
	threads       []*udthread.Thread
	activeThreads int32
	running       int32
	logger        *logrus.Logger

	queueDepth    prometheus.Gauge
	activeWorkers prometheus.Gauge
}

// Option configures optional pool behaviour.
type Option func(*Pool)

// WithLogger injects a structured logger; the default is logrus's
// standard logger.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Pool) { p.logger = l }
}

// WithMetrics registers queue-depth and active-worker gauges for the
// pool to maintain as tasks flow through.
func WithMetrics(queueDepth, activeWorkers prometheus.Gauge) Option {
	return func(p *Pool) {
		p.queueDepth = queueDepth
		p.activeWorkers = activeWorkers
	}
}

// Create starts threadCount workers and returns the running pool.
func Create(threadCount int, opts ...Option) (*Pool, error) {
	tasks, err := safedeque.New[Task](64)
	if err != nil {
		return nil, err
	}
	postTasks, err := safedeque.New[postResult](64)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		tasks:     tasks,
		postTasks: postTasks,
		sem:       udthread.NewSemaphore(0, 1<<20),
		running:   1,
		logger:    logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(p)
	}

	for i := 0; i < threadCount; i++ {
		p.threads = append(p.threads, udthread.Create(p.workerLoop))
	}
	return p, nil
}

func (p *Pool) workerLoop() {
	tracer := otel.Tracer("workerpool")
	for atomic.LoadInt32(&p.running) == 1 {
		if !p.sem.Wait(pollInterval) {
			continue
		}
		task, err := p.tasks.PopFront()
		if err != nil {
			continue
		}
		if p.queueDepth != nil {
			p.queueDepth.Dec()
		}

		atomic.AddInt32(&p.activeThreads, 1)
		if p.activeWorkers != nil {
			p.activeWorkers.Inc()
		}

		_, span := tracer.Start(context.Background(), "workerpool.task")
		val, taskErr := task.Fn(context.Background())
		span.End()

		if task.PostFn != nil {
			p.postTasks.PushBack(postResult{val: val, err: taskErr, fn: task.PostFn})
		}

		atomic.AddInt32(&p.activeThreads, -1)
		if p.activeWorkers != nil {
			p.activeWorkers.Dec()
		}
	}
}

// AddTask enqueues fn/postFn. A task with neither set is rejected with
// InvalidParameter. If the pool has been shut down, AddTask returns
// NotAllowed. A task with a nil Fn and a non-nil PostFn is routed directly
// to the post queue without consuming a worker slot.
func (p *Pool) AddTask(fn func(ctx context.Context) (any, error), postFn func(val any, err error)) error {
	if fn == nil && postFn == nil {
		return result.New(result.InvalidParameter)
	}
	if atomic.LoadInt32(&p.running) == 0 {
		return result.New(result.NotAllowed)
	}

	if fn == nil {
		p.postTasks.PushBack(postResult{fn: postFn})
		return nil
	}

	p.tasks.PushBack(Task{Fn: fn, PostFn: postFn})
	if p.queueDepth != nil {
		p.queueDepth.Inc()
	}
	p.sem.Increment()
	return nil
}

// DoPostWork drains completed post-tasks on the calling (driving)
// thread, running each PostFn in order of completion. A processLimit of
// zero or less drains everything queued. It returns NothingToDo if
// nothing was processed.
func (p *Pool) DoPostWork(processLimit int) (int, error) {
	processed := 0
	for processLimit <= 0 || processed < processLimit {
		pr, err := p.postTasks.PopFront()
		if err != nil {
			break
		}
		if pr.fn != nil {
			pr.fn(pr.val, pr.err)
		}
		processed++
	}
	if processed == 0 {
		return 0, result.New(result.NothingToDo)
	}
	return processed, nil
}

// HasActiveWorkers reports whether any worker is currently executing a
// task or the task queue still holds unclaimed work, matching
// udWorkerPool_HasActiveWorkers's combined "running or queued" check.
func (p *Pool) HasActiveWorkers() bool {
	active, queued := p.Stats()
	return active > 0 || queued > 0
}

// Stats reports the number of workers currently executing a task and the
// number of tasks still queued; pollers use it to quiesce the pool.
func (p *Pool) Stats() (active, queued int) {
	return int(atomic.LoadInt32(&p.activeThreads)), p.tasks.Len()
}

// Destroy stops accepting new work and joins every worker thread.
func (p *Pool) Destroy() {
	atomic.StoreInt32(&p.running, 0)
	for _, th := range p.threads {
		th.Join()
	}
}
