package soa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	var ids Buffer[int64]
	var flags Buffer[byte]

	// Test initial state
	m := Measure(0, &ids, &flags)
	assert.Equal(t, Metrics{Cap: 0, Fields: 2, ElemBytes: 9}, m)

	ids.ReserveExact(0, 10)
	flags.ReserveExact(0, 16)
	m = Measure(4, &ids, &flags)
	assert.Equal(t, 4, m.Len)
	assert.Equal(t, 10, m.Cap, "capacity is the smallest over fields")
	assert.Equal(t, 80+16, m.BytesReserved)
	assert.Equal(t, 36, m.BytesInUse)
	assert.InDelta(t, 36.0/96.0, m.Utilization, 1e-9)
}

func TestMeasureNoFields(t *testing.T) {
	m := Measure(7)
	assert.Equal(t, Metrics{Len: 7, Cap: math.MaxInt}, m)
}

func TestUtilizationEdgeCases(t *testing.T) {
	var unit Buffer[struct{}]
	unit.Reserve(0, 100)
	m := Measure(100, &unit)
	assert.Equal(t, math.MaxInt, m.Cap)
	assert.Zero(t, m.BytesReserved)
	assert.Zero(t, m.Utilization, "nothing reserved means nothing to utilize")

	var full Buffer[int32]
	full.ReserveExact(0, 5)
	assert.Equal(t, 1.0, Measure(5, &full).Utilization)
}

func BenchmarkMeasure(b *testing.B) {
	var a Buffer[int64]
	var c Buffer[float32]
	a.Reserve(0, 1000)
	c.Reserve(0, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Measure(500, &a, &c)
	}
}
