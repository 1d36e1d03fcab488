// Package soatest holds record types and their generated containers, used
// to exercise the container contract end to end.
package soatest

import "slices"

//go:generate go run github.com/pavanmanishd/soa/cmd/soagen -type Particle -output particle_soa.go
//go:generate go run github.com/pavanmanishd/soa/cmd/soagen -type Tracked -output tracked_soa.go
//go:generate go run github.com/pavanmanishd/soa/cmd/soagen -type Empty -output empty_soa.go

// Particle is an ordinary record with a mix of scalar, string, array and
// slice-backed fields.
//
//soa:derive Clone,Equal,Debug
type Particle struct {
	ID   int
	Name string
	Pos  [3]float32
	Tags Tags
}

// Tags is slice-backed: copies made by Clone must not share the array.
type Tags []string

// Clone returns a copy with its own backing array.
func (t Tags) Clone() Tags { return slices.Clone(t) }

// Equal reports whether t and o hold the same tags in the same order.
func (t Tags) Equal(o Tags) bool { return slices.Equal(t, o) }

// Tracked records every finalization of its fields in a DropLog.
//
//soa:derive Clone
type Tracked struct {
	Left  Handle
	Right Handle
}

// DropLog counts Drop calls per handle ID.
type DropLog struct {
	Drops map[int]int
}

// NewDropLog returns an empty log.
func NewDropLog() *DropLog {
	return &DropLog{Drops: map[int]int{}}
}

// Total returns the number of Drop calls recorded.
func (l *DropLog) Total() int {
	n := 0
	for _, c := range l.Drops {
		n += c
	}
	return n
}

// Handle is a field value whose finalization is observable. Dropping a
// zero Handle means a vacant slot was finalized, which is a container bug,
// so it panics.
type Handle struct {
	ID  int
	log *DropLog
}

// NewHandle returns a handle reporting to log.
func NewHandle(log *DropLog, id int) Handle {
	return Handle{ID: id, log: log}
}

// Drop records the finalization.
func (h *Handle) Drop() {
	if h.log == nil {
		panic("soatest: dropped a vacant slot")
	}
	h.log.Drops[h.ID]++
}

// Empty has no fields; its container never allocates.
//
//soa:derive Equal,Debug
type Empty struct{}
