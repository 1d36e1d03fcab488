package soa

import "math"

// Sizer is the view of a buffer that Measure needs.
type Sizer interface {
	Cap() int
	ElemSize() uintptr
	Bytes() int
}

// Metrics contains statistical information about a container.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Unified capacity (min over fields)
	Fields        int     // Number of field buffers
	ElemBytes     int     // Bytes per logical element, summed over fields
	BytesReserved int     // Bytes held by all backing arrays
	BytesInUse    int     // Bytes holding live elements
	Utilization   float64 // Ratio of in-use to reserved bytes (0.0-1.0)
}

// Measure returns a snapshot for a container of the given length backed by
// cols.
func Measure(length int, cols ...Sizer) Metrics {
	m := Metrics{
		Len:    length,
		Cap:    math.MaxInt,
		Fields: len(cols),
	}
	for _, c := range cols {
		if c.Cap() < m.Cap {
			m.Cap = c.Cap()
		}
		m.ElemBytes += int(c.ElemSize())
		m.BytesReserved += c.Bytes()
	}
	m.BytesInUse = length * m.ElemBytes
	if m.BytesReserved > 0 {
		m.Utilization = float64(m.BytesInUse) / float64(m.BytesReserved)
	}
	return m
}
