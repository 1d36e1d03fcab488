package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowShared(t *testing.T) {
	var b Borrow
	r1 := b.Shared("All")
	r2 := b.Shared("All")
	assert.True(t, b.Borrowed())

	v := recovered(func() { b.CheckMutable("Push") })
	require.IsType(t, &BorrowError{}, v)
	assert.Equal(t, &BorrowError{Op: "Push", Shared: 2}, v)

	r1()
	r1() // releasing twice is harmless
	assert.True(t, b.Borrowed())
	r2()
	assert.False(t, b.Borrowed())
	assert.NotPanics(t, func() { b.CheckMutable("Push") })
}

func TestBorrowExclusive(t *testing.T) {
	var b Borrow
	release := b.Exclusive("AllMut")

	tests := []struct {
		name string
		fn   func()
	}{
		{"shared", func() { b.Shared("All") }},
		{"exclusive", func() { b.Exclusive("Retain") }},
		{"mutation", func() { b.CheckMutable("Truncate") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := recovered(tt.fn)
			require.IsType(t, &BorrowError{}, v)
			assert.True(t, v.(*BorrowError).Exclusive)
		})
	}

	release()
	assert.False(t, b.Borrowed())
}

func TestBorrowExclusiveWhileShared(t *testing.T) {
	var b Borrow
	defer b.Shared("All")()
	assert.PanicsWithError(t, "soa: RetainMut while the container is borrowed by 1 view(s)", func() {
		b.Exclusive("RetainMut")
	})
}
