package cluster

import (
	"errors"
	"fmt"
	"sync"
)

// ErrScratchExhausted is returned when an allocation does not fit in the
// remaining scratch capacity.
var ErrScratchExhausted = errors.New("cluster: scratch arena exhausted")

// arena is a bump allocator over a fixed block of cluster scratch memory.
//
// Allocations are zeroed before they are handed out, so call-scoped
// buffers never observe data from a previous call. Frees follow stack
// discipline: releasing the most recent allocation reclaims its space,
// anything else is reclaimed on the next Reset.
type arena struct {
	mu  sync.Mutex
	buf []int8
	off int
}

func newArena(size int) *arena {
	return &arena{buf: make([]int8, size)}
}

func (a *arena) alloc(n int) ([]int8, error) {
	if n < 0 {
		return nil, fmt.Errorf("cluster: negative scratch request %d", n)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.off+n > len(a.buf) {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrScratchExhausted, n, len(a.buf)-a.off)
	}

	s := a.buf[a.off : a.off+n : a.off+n]
	a.off += n

	for i := range s {
		s[i] = 0
	}

	return s, nil
}

func (a *arena) free(buf []int8) {
	if len(buf) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Only the topmost allocation can be popped.
	if a.off >= len(buf) && &a.buf[a.off-len(buf)] == &buf[0] {
		a.off -= len(buf)
	}
}

func (a *arena) available() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.buf) - a.off
}

func (a *arena) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.off = 0
}
