package soa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type big [2048]byte

func TestMinNonZeroCap(t *testing.T) {
	tests := []struct {
		name     string
		elemSize uintptr
		expected int
	}{
		{"byte", 1, 8},
		{"word", 8, 4},
		{"kilobyte", 1024, 4},
		{"over a kilobyte", 1025, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, minNonZeroCap(tt.elemSize))
		})
	}
}

func TestBufferReserve(t *testing.T) {
	t.Run("first allocation respects the minimum", func(t *testing.T) {
		var b Buffer[byte]
		b.Reserve(0, 1)
		assert.Equal(t, 8, b.Cap())

		var w Buffer[int64]
		w.Reserve(0, 1)
		assert.Equal(t, 4, w.Cap())

		var l Buffer[big]
		l.Reserve(0, 1)
		assert.Equal(t, 1, l.Cap())
	})

	t.Run("grows geometrically", func(t *testing.T) {
		var b Buffer[int]
		b.Reserve(0, 4)
		require.Equal(t, 4, b.Cap())
		b.Reserve(4, 1)
		assert.Equal(t, 8, b.Cap())
		b.Reserve(8, 1)
		assert.Equal(t, 16, b.Cap())
	})

	t.Run("large requests are honored exactly", func(t *testing.T) {
		var b Buffer[int]
		b.Reserve(0, 4)
		b.Reserve(4, 100)
		assert.Equal(t, 104, b.Cap())
	})

	t.Run("no-op when room is available", func(t *testing.T) {
		var b Buffer[int]
		b.Reserve(0, 10)
		p := b.Ptr()
		b.Reserve(5, 5)
		assert.Same(t, p, b.Ptr())
	})

	t.Run("keeps the live prefix", func(t *testing.T) {
		var b Buffer[int]
		b.Reserve(0, 3)
		for i := 0; i < 3; i++ {
			b.Write(i, i+10)
		}
		b.Reserve(3, 50)
		assert.Equal(t, []int{10, 11, 12}, b.Range(0, 3))
	})
}

func TestBufferReserveExact(t *testing.T) {
	var b Buffer[int]
	b.ReserveExact(0, 3)
	assert.Equal(t, 3, b.Cap())
	b.ReserveExact(3, 1)
	assert.Equal(t, 4, b.Cap())
	b.ReserveExact(2, 1)
	assert.Equal(t, 4, b.Cap(), "enough room already")
}

func TestBufferOverflow(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"length plus additional", func() {
			var b Buffer[int]
			b.Reserve(1, math.MaxInt)
		}},
		{"negative additional", func() {
			var b Buffer[int]
			b.Reserve(0, -1)
		}},
		{"byte size", func() {
			var b Buffer[int64]
			b.ReserveExact(0, math.MaxInt/4)
		}},
		{"check additional", func() { CheckAdditional(math.MaxInt, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, ErrCapacityOverflow, tt.fn)
		})
	}
}

func TestBufferShrinkTo(t *testing.T) {
	var b Buffer[int]
	b.Reserve(0, 10)
	b.Write(0, 1)
	b.Write(1, 2)

	b.ShrinkTo(2)
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, []int{1, 2}, b.Range(0, 2))

	b.ShrinkTo(5)
	assert.Equal(t, 2, b.Cap(), "never grows")

	b.ShrinkTo(0)
	assert.Equal(t, 0, b.Cap())
	assert.Nil(t, b.Ptr())
}

func TestBufferRelease(t *testing.T) {
	var b Buffer[*int]
	b.Reserve(0, 2)
	x := 1
	b.Write(0, &x)
	b.Release(1)
	assert.Equal(t, 0, b.Cap())
	assert.Nil(t, b.Ptr())

	// usable again
	b.Reserve(0, 1)
	b.Write(0, &x)
	assert.Same(t, &x, *b.At(0))
}

func TestBufferZeroSize(t *testing.T) {
	var b Buffer[struct{}]
	assert.Equal(t, math.MaxInt, b.Cap())
	assert.Zero(t, b.ElemSize())

	b.Reserve(0, 1000)
	b.ReserveExact(1000, 1000)
	assert.Zero(t, b.Bytes(), "zero-size buffers never allocate")

	b.Write(999, struct{}{})
	_ = b.Take(999)
	assert.Len(t, b.Range(0, 1000), 1000)
	assert.NotNil(t, b.Ptr())
	b.Release(1000)
	assert.Equal(t, math.MaxInt, b.Cap())
}

func TestBufferRange(t *testing.T) {
	var b Buffer[int]
	b.Reserve(0, 8)
	for i := 0; i < 5; i++ {
		b.Write(i, i)
	}

	r := b.Range(1, 3)
	assert.Equal(t, []int{1, 2}, r)
	assert.Equal(t, 2, cap(r), "capacity is clipped")

	r = append(r, 99)
	assert.Equal(t, 3, *b.At(3), "append on a range does not write into the buffer")
	assert.Empty(t, b.Range(0, 0))
}

func TestBufferBytes(t *testing.T) {
	var b Buffer[int32]
	assert.Zero(t, b.Bytes())
	b.ReserveExact(0, 10)
	assert.Equal(t, 40, b.Bytes())
	assert.Equal(t, uintptr(4), b.ElemSize())
}

func TestMinCap(t *testing.T) {
	assert.Equal(t, math.MaxInt, MinCap())
	assert.Equal(t, 3, MinCap(8, 3, math.MaxInt))
	assert.Equal(t, 0, MinCap(0, 4))
}

func BenchmarkBufferReserve(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var buf Buffer[int]
		for n := 0; n < 1024; n++ {
			buf.Reserve(n, 1)
			buf.Write(n, n)
		}
	}
}
