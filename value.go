package soa

import "unsafe"

// Dropper is implemented by field types that must release something when
// the container finalizes them: on Truncate, Clear and Release, and when a
// slot is overwritten through DropValue. Values moved out of a container
// (Pop, Remove, SwapRemove, SplitOff, Append) are not dropped; they belong
// to the caller from then on.
type Dropper interface {
	Drop()
}

// Cloner is implemented by field types whose copies must not share state,
// e.g. a slice-backed type returning a fresh backing array.
type Cloner[T any] interface {
	Clone() T
}

// CloneValue duplicates v through its Clone method when T (or *T) defines
// one, and by plain assignment otherwise.
func CloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// DropValue finalizes *p and resets it to the zero value.
func DropValue[T any](p *T) {
	dropPtr(p)
	var zero T
	*p = zero
}

// drops reports whether values of T need finalizing beyond being zeroed.
func drops[T any]() bool {
	_, ok := any((*T)(nil)).(Dropper)
	return ok
}

func dropPtr[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
}

// Add returns p advanced by n elements. The result must stay within the
// allocation p points into; pointers obtained from a container's AsPtr are
// only meaningful for offsets in [0, Cap()).
func Add[T any](p *T, n int) *T {
	if p == nil {
		return nil
	}
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(p), n*int(unsafe.Sizeof(zero)))) //nolint:gosec // caller keeps n within the allocation
}
