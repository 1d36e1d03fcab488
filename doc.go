// Package soa is the runtime support for containers generated by soagen,
// which lay out a slice of structs as a struct of slices.
//
// # Overview
//
// For a record type
//
//	type Particle struct {
//		ID   int
//		Name string
//		Pos  [3]float32
//	}
//
// soagen emits ParticleVec, a growable container holding one Buffer per
// field (one for every ID, one for every Name, one for every Pos) and a single
// shared length. From the outside it behaves like a []Particle:
//
//	v := NewParticleVec()
//	v.Push(Particle{ID: 1, Name: "a"})
//	v.Insert(0, Particle{ID: 0, Name: "b"})
//	p := v.Remove(1)
//	v.Retain(func(r ParticleRef) bool { return *r.ID%2 == 0 })
//
// while scans that touch a single field only walk that field's memory:
//
//	for _, pos := range v.AsSlice().Pos {
//		// ...
//	}
//
// # Generating
//
// Annotate the record and run go generate:
//
//	//go:generate go run github.com/pavanmanishd/soa/cmd/soagen -type Particle
//
// or mark the type with a directive comment and omit -type:
//
//	//soa:derive Clone,Equal,Debug
//	type Particle struct { ... }
//
// # Memory Layout
//
// Every Buffer holds Cap() slots; the first Len() of them are live in every
// buffer at once. Growth is geometric and applied to every buffer, so the
// capacities stay equal and Cap() reports their minimum. Vacant slots hold
// the zero value of the field type.
//
// # Ownership
//
//   - Pop, Remove, SwapRemove, SplitOff and Append move values out of a
//     container; the container never finalizes them afterwards.
//   - Truncate, Clear and Release finalize the values they discard: field
//     types implementing Dropper get their Drop method called exactly once.
//   - ExtendWith, Resize and Clone duplicate values through CloneValue, which
//     honours a Clone method on the field type.
//
// # Preconditions
//
// Out-of-range indices passed to Insert, Remove, SwapRemove, SplitOff, Index
// and Slice panic with *IndexError or *RangeError before any buffer is
// touched. Get and GetMut report absence through their second result
// instead. Capacity requests that overflow panic with ErrCapacityOverflow.
//
// # Borrowing
//
// Containers are not goroutine-safe. A Borrow records the views handed out
// by All, AllMut, Retain and RetainMut; mutating the container while one of
// them is live panics with *BorrowError. Slices returned by AsSlice and
// pointers returned by AsPtr are not tracked and are invalidated by any
// operation that may reallocate a buffer.
//
// # Metrics
//
// Every container reports a Metrics snapshot:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Bytes reserved: %d\n", m.BytesReserved)
package soa
