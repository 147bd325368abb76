// Package cluster models the execution environment of a multi-core DSP
// compute cluster: a single controlling ("primary") context and a pool of
// worker-capable cores that parallel glue code can fork work across.
//
// The package separates the capability surface ([Context]) from its
// implementation so that parallel dispatchers depend only on the three
// primitives they need: the execution-context query, the fork/barrier
// team primitive, and the cluster-scoped scratch allocator. The default
// implementation ([Cluster]) simulates the cluster with one pinned
// goroutine per core; [Controller] stands in for the primary context,
// which cannot run worker teams.
package cluster

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrControllerContext = errors.New("cluster: operation requires a worker-capable cluster context")
	ErrBadTeamSize       = errors.New("cluster: team size must be between 1 and the core count")
	ErrClosed            = errors.New("cluster: cluster has been closed")
)

// WorkerFunc is invoked exactly once per participating core. The coreID
// argument is the stable, 0-indexed identity of the executing core for
// the duration of the fork.
type WorkerFunc func(coreID int)

// Context is the capability surface parallel glue code runs against.
//
// A Context is either worker-capable (a compute cluster) or the primary
// controller context. Fork and the scratch allocator are only usable on
// worker-capable contexts; the controller refuses both.
type Context interface {
	// WorkerCapable reports whether this context can run worker teams.
	WorkerCapable() bool

	// Cores returns the number of worker cores available to a team.
	// The controller context reports 0.
	Cores() int

	// Fork runs worker concurrently on cores 0..n-1 and blocks until
	// every invocation has returned. The join is the barrier: when Fork
	// returns, all per-core writes made by the workers are visible to
	// the caller.
	Fork(n int, worker WorkerFunc) error

	// AllocI8 obtains a zeroed n-element scratch buffer from
	// cluster-scoped memory. The buffer's lifetime is managed by the
	// caller; release it with FreeI8.
	AllocI8(n int) ([]int8, error)

	// FreeI8 returns a buffer obtained from AllocI8. Buffers must be
	// released in reverse allocation order to actually reclaim space.
	FreeI8(buf []int8)
}

var (
	_ Context = (*Cluster)(nil)
	_ Context = controller{}
)

type forkJob struct {
	worker WorkerFunc
	wg     *sync.WaitGroup
}

// Cluster is a worker-capable [Context] backed by one pinned goroutine
// per simulated core. Each core runs at most one worker at a time, so a
// team of n never oversubscribes the n cores it occupies.
type Cluster struct {
	jobs    []chan forkJob
	scratch *arena

	mu     sync.Mutex
	closed bool
}

// New creates a cluster with the configured core count and scratch
// capacity. Callers must Close the cluster when done with it.
func New(opts ...Option) (*Cluster, error) {
	cfg := applyOptions(opts...)

	c := &Cluster{
		jobs:    make([]chan forkJob, cfg.Cores),
		scratch: newArena(cfg.ScratchSize),
	}

	for id := range c.jobs {
		ch := make(chan forkJob)
		c.jobs[id] = ch

		go func(coreID int, ch chan forkJob) {
			for job := range ch {
				job.worker(coreID)
				job.wg.Done()
			}
		}(id, ch)
	}

	return c, nil
}

// WorkerCapable reports true: a Cluster is the worker side.
func (c *Cluster) WorkerCapable() bool { return true }

// Cores returns the number of simulated cores.
func (c *Cluster) Cores() int { return len(c.jobs) }

// Fork dispatches worker to cores 0..n-1 and waits for all of them.
// Workers must not call Fork or Close on their own cluster.
func (c *Cluster) Fork(n int, worker WorkerFunc) error {
	if n < 1 || n > len(c.jobs) {
		return fmt.Errorf("%w: got %d of %d cores", ErrBadTeamSize, n, len(c.jobs))
	}

	var wg sync.WaitGroup
	wg.Add(n)

	// The lock is held across the dispatch so Close cannot close the
	// job channels between the closed check and the sends. Workers
	// never take the lock, so the sends still complete.
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}

	for id := 0; id < n; id++ {
		c.jobs[id] <- forkJob{worker: worker, wg: &wg}
	}
	c.mu.Unlock()

	wg.Wait()

	return nil
}

// AllocI8 carves a zeroed buffer out of the cluster scratch arena.
func (c *Cluster) AllocI8(n int) ([]int8, error) {
	return c.scratch.alloc(n)
}

// FreeI8 releases a scratch buffer back to the arena.
func (c *Cluster) FreeI8(buf []int8) {
	c.scratch.free(buf)
}

// ScratchAvailable returns the number of scratch elements currently
// allocatable. Intended for diagnostics and tests.
func (c *Cluster) ScratchAvailable() int {
	return c.scratch.available()
}

// ResetScratch releases every outstanding scratch allocation at once.
// Callers must not touch buffers obtained before the reset afterwards.
func (c *Cluster) ResetScratch() {
	c.scratch.reset()
}

// Close stops the core goroutines. Fork calls after Close return
// ErrClosed; a Fork in flight completes normally first.
func (c *Cluster) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	for _, ch := range c.jobs {
		close(ch)
	}

	return nil
}

// controller is the primary execution context. It cannot fork teams and
// has no cluster scratch memory.
type controller struct{}

// Controller returns the primary (non-worker-capable) execution context.
// Parallel entry points invoked with it fail their eligibility check
// instead of computing.
func Controller() Context { return controller{} }

func (controller) WorkerCapable() bool { return false }

func (controller) Cores() int { return 0 }

func (controller) Fork(n int, worker WorkerFunc) error {
	return ErrControllerContext
}

func (controller) AllocI8(n int) ([]int8, error) {
	return nil, ErrControllerContext
}

func (controller) FreeI8(buf []int8) {}
