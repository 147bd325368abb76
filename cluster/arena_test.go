package cluster

import (
	"errors"
	"testing"
)

func TestArenaAllocAndFree(t *testing.T) {
	c := newCluster(t, WithScratchSize(16))

	a, err := c.AllocI8(8)
	if err != nil {
		t.Fatalf("AllocI8: %v", err)
	}

	if len(a) != 8 {
		t.Fatalf("len = %d, want 8", len(a))
	}

	if c.ScratchAvailable() != 8 {
		t.Fatalf("available = %d, want 8", c.ScratchAvailable())
	}

	c.FreeI8(a)

	if c.ScratchAvailable() != 16 {
		t.Fatalf("available after free = %d, want 16", c.ScratchAvailable())
	}
}

func TestArenaAllocZeroesReusedMemory(t *testing.T) {
	c := newCluster(t, WithScratchSize(8))

	a, err := c.AllocI8(8)
	if err != nil {
		t.Fatalf("AllocI8: %v", err)
	}

	for i := range a {
		a[i] = -1
	}

	c.FreeI8(a)

	b, err := c.AllocI8(8)
	if err != nil {
		t.Fatalf("AllocI8: %v", err)
	}

	for i, v := range b {
		if v != 0 {
			t.Fatalf("b[%d] = %d, want 0 (stale data)", i, v)
		}
	}
}

func TestArenaExhaustion(t *testing.T) {
	c := newCluster(t, WithScratchSize(4))

	if _, err := c.AllocI8(5); !errors.Is(err, ErrScratchExhausted) {
		t.Fatalf("err = %v, want ErrScratchExhausted", err)
	}

	a, err := c.AllocI8(4)
	if err != nil {
		t.Fatalf("AllocI8: %v", err)
	}

	if _, err := c.AllocI8(1); !errors.Is(err, ErrScratchExhausted) {
		t.Fatalf("err = %v, want ErrScratchExhausted", err)
	}

	c.FreeI8(a)
}

func TestArenaLIFODiscipline(t *testing.T) {
	c := newCluster(t, WithScratchSize(16))

	a, err := c.AllocI8(8)
	if err != nil {
		t.Fatalf("AllocI8: %v", err)
	}

	b, err := c.AllocI8(8)
	if err != nil {
		t.Fatalf("AllocI8: %v", err)
	}

	// Freeing out of order does not reclaim; the space comes back only
	// on reset.
	c.FreeI8(a)

	if c.ScratchAvailable() != 0 {
		t.Fatalf("available = %d, want 0", c.ScratchAvailable())
	}

	c.FreeI8(b)

	if c.ScratchAvailable() != 8 {
		t.Fatalf("available = %d, want 8", c.ScratchAvailable())
	}

	c.ResetScratch()

	if c.ScratchAvailable() != 16 {
		t.Fatalf("available after reset = %d, want 16", c.ScratchAvailable())
	}
}

func TestArenaZeroLengthAlloc(t *testing.T) {
	c := newCluster(t, WithScratchSize(4))

	a, err := c.AllocI8(0)
	if err != nil {
		t.Fatalf("AllocI8(0): %v", err)
	}

	if len(a) != 0 {
		t.Fatalf("len = %d, want 0", len(a))
	}

	c.FreeI8(a)
}

func TestArenaNegativeRequest(t *testing.T) {
	c := newCluster(t, WithScratchSize(4))

	if _, err := c.AllocI8(-1); err == nil {
		t.Fatal("negative request must fail")
	}
}
