package mat

import (
	"errors"
	"testing"
)

func TestScaleStrideI16(t *testing.T) {
	// 2x3 source embedded in rows of stride 4, destination stride 5.
	src := []int16{
		10, 20, 30, -1,
		-40, 50, 60, -1,
	}
	dst := make([]int16, 2*5)
	for i := range dst {
		dst[i] = 99
	}

	if err := ScaleStrideI16(dst, src, 2, 3, 5, 4, 3, 1); err != nil {
		t.Fatalf("ScaleStrideI16: %v", err)
	}

	want := []int16{
		15, 30, 45, 99, 99,
		-60, 75, 90, 99, 99,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestScaleStrideI16_NegativeScaleAndShift(t *testing.T) {
	src := []int16{100, -100}
	dst := make([]int16, 2)

	if err := ScaleStrideI16(dst, src, 1, 2, 2, 2, -4, 2); err != nil {
		t.Fatalf("ScaleStrideI16: %v", err)
	}

	// 100*-4 = -400, >>2 = -100 (arithmetic shift rounds toward
	// negative infinity: -400>>2 is exact here).
	if dst[0] != -100 || dst[1] != 100 {
		t.Fatalf("got [%d %d], want [-100 100]", dst[0], dst[1])
	}
}

func TestScaleStrideI16_WideProduct(t *testing.T) {
	// 32767 * 2 overflows int16 but not the 32-bit intermediate.
	src := []int16{32767}
	dst := make([]int16, 1)

	if err := ScaleStrideI16(dst, src, 1, 1, 1, 1, 2, 1); err != nil {
		t.Fatalf("ScaleStrideI16: %v", err)
	}

	if dst[0] != 32767 {
		t.Fatalf("got %d, want 32767", dst[0])
	}
}

func TestScaleStrideI16_EmptyShape(t *testing.T) {
	if err := ScaleStrideI16(nil, nil, 0, 0, 0, 0, 1, 0); err != nil {
		t.Fatalf("empty shape: %v", err)
	}

	if err := ScaleStrideI16(nil, nil, 3, 0, 0, 0, 1, 0); err != nil {
		t.Fatalf("zero cols: %v", err)
	}
}

func TestScaleStrideI16_Errors(t *testing.T) {
	src := make([]int16, 8)
	dst := make([]int16, 8)

	if err := ScaleStrideI16(dst, src, -1, 2, 2, 2, 1, 0); !errors.Is(err, ErrBadShape) {
		t.Fatalf("err = %v, want ErrBadShape", err)
	}

	if err := ScaleStrideI16(dst, src, 2, 3, 3, 2, 1, 0); !errors.Is(err, ErrBadStride) {
		t.Fatalf("err = %v, want ErrBadStride", err)
	}

	if err := ScaleStrideI16(dst, make([]int16, 4), 2, 3, 3, 3, 1, 0); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("short src: err = %v, want ErrShortBuffer", err)
	}

	if err := ScaleStrideI16(make([]int16, 4), src, 2, 3, 3, 3, 1, 0); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("short dst: err = %v, want ErrShortBuffer", err)
	}
}
