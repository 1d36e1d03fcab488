package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted records every Drop in a shared map keyed by id.
type counted struct {
	id  int
	log map[int]int
}

func (c *counted) Drop() {
	if c.log == nil {
		panic("dropped a vacant slot")
	}
	c.log[c.id]++
}

func filled(values ...int) *Buffer[int] {
	var b Buffer[int]
	b.ReserveExact(0, len(values)+1)
	for i, v := range values {
		b.Write(i, v)
	}
	return &b
}

func TestBufferTake(t *testing.T) {
	b := filled(1, 2, 3)
	assert.Equal(t, 2, b.Take(1))
	assert.Zero(t, *b.At(1), "slot is vacant after a move")
}

func TestBufferShift(t *testing.T) {
	t.Run("right opens a vacant slot", func(t *testing.T) {
		b := filled(1, 2, 3)
		b.ShiftRight(1, 3)
		assert.Equal(t, []int{1, 0, 2, 3}, b.Range(0, 4))
	})

	t.Run("right at the end", func(t *testing.T) {
		b := filled(1, 2, 3)
		b.ShiftRight(3, 3)
		assert.Equal(t, []int{1, 2, 3, 0}, b.Range(0, 4))
	})

	t.Run("left closes a vacant slot", func(t *testing.T) {
		b := filled(1, 2, 3)
		_ = b.Take(0)
		b.ShiftLeft(0, 3)
		assert.Equal(t, []int{2, 3, 0}, b.Range(0, 3))
	})
}

func TestBufferSwap(t *testing.T) {
	b := filled(1, 2, 3)
	b.Swap(0, 2)
	assert.Equal(t, []int{3, 2, 1}, b.Range(0, 3))
	b.Swap(1, 1)
	assert.Equal(t, []int{3, 2, 1}, b.Range(0, 3))
}

func TestBufferMoveTo(t *testing.T) {
	src := filled(1, 2, 3, 4)
	var dst Buffer[int]
	dst.ReserveExact(0, 4)
	dst.Write(0, 9)

	src.MoveTo(&dst, 1, 2, 4)
	assert.Equal(t, []int{9, 3, 4}, dst.Range(0, 3))
	assert.Equal(t, []int{1, 2, 0, 0}, src.Range(0, 4), "moved slots are vacant")

	src.MoveTo(&dst, 3, 2, 2)
	assert.Zero(t, *dst.At(3), "empty range moves nothing")
}

func TestBufferFill(t *testing.T) {
	log := map[int]int{}
	var b Buffer[counted]
	b.ReserveExact(0, 3)
	b.Fill(0, 3, counted{id: 7, log: log})
	for i := 0; i < 3; i++ {
		assert.Equal(t, 7, b.At(i).id)
	}
	assert.Empty(t, log, "filling drops nothing")

	b.Fill(0, 0, counted{})
	assert.Equal(t, 7, b.At(0).id)
}

func TestBufferFillClones(t *testing.T) {
	var b Buffer[tags]
	b.ReserveExact(0, 3)
	v := tags{"a"}
	b.Fill(0, 3, v)

	(*b.At(0))[0] = "changed"
	assert.Equal(t, "a", (*b.At(1))[0], "clones do not share storage")
	assert.Equal(t, "a", v[0], "clones do not alias the original")
	(*b.At(2))[0] = "last"
	assert.Equal(t, "last", v[0], "the original is moved into the last slot")
}

func TestBufferCloneTo(t *testing.T) {
	var src Buffer[tags]
	src.ReserveExact(0, 2)
	src.Write(0, tags{"x"})
	src.Write(1, tags{"y", "z"})

	var dst Buffer[tags]
	dst.ReserveExact(0, 2)
	src.CloneTo(&dst, 2)
	require.Equal(t, src.Range(0, 2), dst.Range(0, 2))

	(*dst.At(1))[0] = "w"
	assert.Equal(t, "y", (*src.At(1))[0])
}

func TestBufferDrop(t *testing.T) {
	log := map[int]int{}
	var b Buffer[counted]
	b.ReserveExact(0, 4)
	for i := 0; i < 4; i++ {
		b.Write(i, counted{id: i, log: log})
	}

	b.Drop(3)
	assert.Equal(t, map[int]int{3: 1}, log)
	assert.Nil(t, b.At(3).log, "dropped slot is vacant")

	b.DropRange(0, 3)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, log)

	b.DropRange(2, 2)
	assert.Len(t, log, 4)
}

func TestBufferReleaseDrops(t *testing.T) {
	log := map[int]int{}
	var b Buffer[counted]
	b.ReserveExact(0, 4)
	b.Write(0, counted{id: 0, log: log})
	b.Write(1, counted{id: 1, log: log})

	// Slots past the live prefix are vacant and must not be finalized.
	b.Release(2)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, log)
}
