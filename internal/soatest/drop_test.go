package soatest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tracked(log *DropLog, ids ...int) *TrackedVec {
	v := NewTrackedVec()
	for _, id := range ids {
		v.Push(Tracked{Left: NewHandle(log, id), Right: NewHandle(log, -id-1)})
	}
	return v
}

// dropOut finalizes values the caller took ownership of.
func dropOut(rs ...Tracked) {
	for i := range rs {
		rs[i].Left.Drop()
		rs[i].Right.Drop()
	}
}

// requireDroppedOnce checks that every handle in ids was finalized exactly
// once, on both sides of the record, and nothing else was.
func requireDroppedOnce(t *testing.T, log *DropLog, ids ...int) {
	t.Helper()
	want := map[int]int{}
	for _, id := range ids {
		want[id] = 1
		want[-id-1] = 1
	}
	require.Equal(t, want, log.Drops)
}

func TestDropOnTruncate(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0, 1, 2, 3, 4)

	v.Truncate(3)
	requireDroppedOnce(t, log, 3, 4)

	v.Truncate(3)
	requireDroppedOnce(t, log, 3, 4)

	v.Clear()
	requireDroppedOnce(t, log, 0, 1, 2, 3, 4)
	assert.Zero(t, v.Len())
}

func TestDropOnRelease(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0, 1, 2)
	v.Reserve(20)

	// Vacant slots past Len would panic if finalized.
	v.Release()
	requireDroppedOnce(t, log, 0, 1, 2)
	assert.Zero(t, v.Cap())
}

func TestMovesDoNotDrop(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0, 1, 2, 3, 4, 5)

	r, ok := v.Pop()
	require.True(t, ok)
	removed := v.Remove(0)
	swapped := v.SwapRemove(0)
	assert.Empty(t, log.Drops, "moved-out values belong to the caller")

	tail := v.SplitOff(1)
	other := tracked(log, 10)
	v.Append(other)
	assert.Empty(t, log.Drops)

	v.Append(tail)
	assert.Zero(t, tail.Len())
	tail.Clear()
	other.Clear()
	assert.Empty(t, log.Drops, "emptied sources hold nothing to drop")

	dropOut(r, removed, swapped)
	v.Clear()
	requireDroppedOnce(t, log, 0, 1, 2, 3, 4, 5, 10)
}

func TestDropOnRetain(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0, 1, 2, 3, 4, 5)

	v.Retain(func(r TrackedRef) bool { return r.Left.ID%3 == 0 })
	requireDroppedOnce(t, log, 1, 2, 4, 5)
	assert.Equal(t, 0, v.Index(0).Left.ID)
	assert.Equal(t, 3, v.Index(1).Left.ID)
	assert.Equal(t, -4, v.Index(1).Right.ID, "fields of a record stay together")

	v.Release()
	requireDroppedOnce(t, log, 0, 1, 2, 3, 4, 5)
}

func TestDropOnResize(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0)

	v.Resize(4, Tracked{Left: NewHandle(log, 7), Right: NewHandle(log, -8)})
	assert.Empty(t, log.Drops)
	assert.Equal(t, 4, v.Len())

	v.Resize(1, Tracked{})
	assert.Equal(t, map[int]int{7: 3, -8: 3}, log.Drops, "three copies truncated")

	v.Clear()
	assert.Equal(t, map[int]int{0: 1, -1: 1, 7: 3, -8: 3}, log.Drops)
}

func TestDropOnReplace(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0, 1)

	old := v.Replace(1, Tracked{Left: NewHandle(log, 2), Right: NewHandle(log, -3)})
	assert.Empty(t, log.Drops, "replaced value is returned, not dropped")
	dropOut(old)

	m, ok := v.GetMut(0)
	require.True(t, ok)
	dropOut(m.Replace(Tracked{Left: NewHandle(log, 3), Right: NewHandle(log, -4)}))

	v.Clear()
	requireDroppedOnce(t, log, 0, 1, 2, 3)
}

func TestDropAfterGrowth(t *testing.T) {
	log := NewDropLog()
	v := NewTrackedVec()
	for i := 0; i < 100; i++ {
		v.Insert(v.Len()/2, Tracked{Left: NewHandle(log, i), Right: NewHandle(log, -i-1)})
	}
	v.ShrinkToFit()
	assert.Empty(t, log.Drops, "reallocating moves values without dropping")

	ids := make([]int, 100)
	for i := range ids {
		ids[i] = i
	}
	v.Clear()
	requireDroppedOnce(t, log, ids...)
}

func TestCloneDropsIndependently(t *testing.T) {
	log := NewDropLog()
	v := tracked(log, 0, 1)
	c := v.Clone()

	c.Clear()
	v.Clear()
	assert.Equal(t, map[int]int{0: 2, -1: 2, 1: 2, -2: 2}, log.Drops, "original and clone each drop their own copy")
}
