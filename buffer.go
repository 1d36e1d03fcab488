package soa

import (
	"math"
	"unsafe"
)

// Buffer is the storage for one field of a structure-of-arrays container.
// It owns a backing array of Cap() slots but does not track how many of
// them are live: the owning container keeps a single length shared by all
// of its buffers and passes it to every call that needs it.
//
// Slots past the container length are kept at the zero value of T, so the
// garbage collector never sees a stale reference through a vacated slot.
//
// The zero value is an unallocated buffer ready for use.
type Buffer[T any] struct {
	data []T // len(data) is the capacity
}

// zeroBase backs every buffer of a zero-size element type.
var zeroBase struct{}

// isZeroSize reports whether T occupies no memory.
func isZeroSize[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// ElemSize returns the size in bytes of one slot.
func (b *Buffer[T]) ElemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Cap returns the number of slots the buffer can hold without reallocating.
// Buffers of zero-size types never allocate and report math.MaxInt.
func (b *Buffer[T]) Cap() int {
	if isZeroSize[T]() {
		return math.MaxInt
	}
	return len(b.data)
}

// Bytes returns the number of bytes reserved by the backing array.
func (b *Buffer[T]) Bytes() int {
	return len(b.data) * int(b.ElemSize())
}

// Reserve makes room for at least length+additional slots, growing
// geometrically so that repeated pushes are amortized O(1).
func (b *Buffer[T]) Reserve(length, additional int) {
	required := checkedCap(length, additional)
	capacity := b.Cap()
	if required <= capacity {
		return
	}
	newCap := required
	if capacity <= math.MaxInt/2 && 2*capacity > newCap {
		newCap = 2 * capacity
	}
	if m := minNonZeroCap(b.ElemSize()); newCap < m {
		newCap = m
	}
	b.realloc(newCap, length)
}

// ReserveExact makes room for exactly length+additional slots, without
// speculative over-allocation.
func (b *Buffer[T]) ReserveExact(length, additional int) {
	required := checkedCap(length, additional)
	if required <= b.Cap() {
		return
	}
	b.realloc(required, length)
}

// ShrinkTo releases capacity beyond length.
func (b *Buffer[T]) ShrinkTo(length int) {
	if isZeroSize[T]() || length >= len(b.data) {
		return
	}
	if length == 0 {
		b.data = nil
		return
	}
	b.realloc(length, length)
}

// Release frees the backing array after dropping the live prefix [0, length).
// The buffer is unallocated afterwards.
func (b *Buffer[T]) Release(length int) {
	b.DropRange(0, length)
	b.data = nil
}

// realloc moves the live prefix into a fresh backing array of newCap slots.
// The new array is fully allocated before the old one is let go, so a failed
// allocation leaves the buffer as it was.
func (b *Buffer[T]) realloc(newCap, length int) {
	if uintptr(newCap) > uintptr(math.MaxInt)/b.ElemSize() {
		panic(ErrCapacityOverflow)
	}
	data := make([]T, newCap)
	copy(data, b.data[:length])
	b.data = data
}

// slots returns the first n slots of the buffer, live or not.
func (b *Buffer[T]) slots(n int) []T {
	if isZeroSize[T]() {
		if n == 0 {
			return nil
		}
		return unsafe.Slice((*T)(unsafe.Pointer(&zeroBase)), n) //nolint:gosec // zero-size elements are never dereferenced
	}
	return b.data[:n]
}

// Ptr returns a pointer to slot 0, or nil when nothing is allocated.
// The pointer is invalidated by any call that may reallocate the buffer.
func (b *Buffer[T]) Ptr() *T {
	if isZeroSize[T]() {
		return (*T)(unsafe.Pointer(&zeroBase)) //nolint:gosec // zero-size elements are never dereferenced
	}
	if len(b.data) == 0 {
		return nil
	}
	return &b.data[0]
}

// Range returns slots [start, end) as a slice whose capacity is clipped to
// end, so appending to it never writes into the buffer.
func (b *Buffer[T]) Range(start, end int) []T {
	return b.slots(end)[start:end:end]
}

// At returns a pointer to slot i.
func (b *Buffer[T]) At(i int) *T {
	return &b.slots(i + 1)[i]
}

// minNonZeroCap mirrors the small-vector policy of the usual growable
// arrays: tiny elements start at 8 slots, ordinary ones at 4, and elements
// over 1 KiB at a single slot.
func minNonZeroCap(elemSize uintptr) int {
	switch {
	case elemSize == 1:
		return 8
	case elemSize <= 1024:
		return 4
	default:
		return 1
	}
}

// checkedCap returns length+additional or panics with ErrCapacityOverflow.
func checkedCap(length, additional int) int {
	if additional < 0 || length > math.MaxInt-additional {
		panic(ErrCapacityOverflow)
	}
	return length + additional
}

// CheckAdditional panics with ErrCapacityOverflow when a container of the
// given length cannot grow by additional elements. Containers call it before
// touching any of their buffers.
func CheckAdditional(length, additional int) {
	checkedCap(length, additional)
}

// MinCap returns the smallest of the given capacities, or math.MaxInt when
// there are none: a record without fields never needs to allocate.
func MinCap(caps ...int) int {
	m := math.MaxInt
	for _, c := range caps {
		if c < m {
			m = c
		}
	}
	return m
}
