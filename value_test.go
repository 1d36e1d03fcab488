package soa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tags []string

func (t tags) Clone() tags { return slices.Clone(t) }

type cell struct{ n int }

func (c *cell) Clone() cell { return cell{n: c.n + 1} }

func TestCloneValue(t *testing.T) {
	t.Run("value receiver", func(t *testing.T) {
		v := tags{"a", "b"}
		c := CloneValue(v)
		c[0] = "z"
		assert.Equal(t, "a", v[0])
	})

	t.Run("pointer receiver", func(t *testing.T) {
		assert.Equal(t, 2, CloneValue(cell{n: 1}).n)
	})

	t.Run("plain assignment", func(t *testing.T) {
		assert.Equal(t, 42, CloneValue(42))
		assert.Equal(t, [2]int{1, 2}, CloneValue([2]int{1, 2}))
	})
}

func TestDropValue(t *testing.T) {
	log := map[int]int{}
	c := counted{id: 5, log: log}
	DropValue(&c)
	assert.Equal(t, 1, log[5])
	assert.Equal(t, counted{}, c, "dropped value is reset")

	n := 3
	DropValue(&n)
	assert.Zero(t, n)
}

func TestDrops(t *testing.T) {
	assert.True(t, drops[counted]())
	assert.False(t, drops[int]())
	assert.False(t, drops[*counted](), "pointer fields are not finalized")
}

func TestAdd(t *testing.T) {
	s := []int64{10, 20, 30}
	p := &s[0]
	assert.Equal(t, int64(30), *Add(p, 2))
	assert.Same(t, p, Add(p, 0))

	var nilp *int64
	assert.Nil(t, Add(nilp, 3))
}
