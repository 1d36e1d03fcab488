package soatest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRecord(t *testing.T) {
	v := NewEmptyVec()
	assert.Equal(t, math.MaxInt, v.Cap(), "records without fields never allocate")

	for i := 0; i < 10; i++ {
		v.Push(Empty{})
	}
	v.Extend(Empty{}, Empty{})
	v.Insert(0, Empty{})
	assert.Equal(t, 13, v.Len())
	assert.Zero(t, v.Metrics().BytesReserved)

	_, ok := v.Pop()
	assert.True(t, ok)
	v.Remove(3)
	v.SwapRemove(0)
	assert.Equal(t, 10, v.Len())

	n := 0
	v.Retain(func(EmptyRef) bool {
		n++
		return n%2 == 0
	})
	assert.Equal(t, 10, n)
	assert.Equal(t, 5, v.Len())

	tail := v.SplitOff(2)
	assert.Equal(t, 3, tail.Len())
	v.Append(tail)
	assert.Equal(t, 5, v.Len())
	assert.True(t, v.Equal(v))
	assert.False(t, v.Equal(NewEmptyVec()))

	count := 0
	for range v.All() {
		count++
	}
	assert.Equal(t, 5, count)

	_, ok = v.Get(4)
	assert.True(t, ok)
	_, ok = v.Get(5)
	assert.False(t, ok)
	assert.Panics(t, func() { v.Index(5) })

	assert.Equal(t, "EmptyVec{}", v.String())
	require.True(t, v.AsPtr().IsNil())

	v.Truncate(1)
	assert.Equal(t, 1, v.Len())
	v.Release()
	assert.Zero(t, v.Len())
	assert.Equal(t, math.MaxInt, v.Cap())
}

func TestEmptyRecordViews(t *testing.T) {
	v := NewEmptyVec()
	v.Extend(make([]Empty, 5)...)

	s := v.AsSlice()
	assert.Equal(t, 5, s.Len(), "views cover [0, Len) without any field")
	assert.Equal(t, 5, v.AsSliceMut().Len())

	_, ok := s.Last()
	assert.True(t, ok)
	_, ok = s.Get(5)
	assert.False(t, ok)

	sub := v.Slice(1, 4)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 2, sub.Slice(1, 3).Len())
	assert.Equal(t, 2, v.SliceMut(3, 5).Len())
	assert.True(t, sub.Equal(v.Slice(0, 3)))
	assert.False(t, sub.Equal(s))

	count := 0
	for range sub.All() {
		count++
	}
	assert.Equal(t, 3, count)

	assert.Panics(t, func() { v.Slice(0, 6) })
	assert.Equal(t, "EmptySlice{}", s.String())
}
