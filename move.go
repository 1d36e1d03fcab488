package soa

// Element moves. Every operation here transfers ownership: a slot that has
// been moved out of is reset to the zero value and is never dropped again.
// Callers guarantee the indices are within the capacity they reserved.

// Write stores v in slot i, which must not hold a live value.
func (b *Buffer[T]) Write(i int, v T) {
	b.slots(i + 1)[i] = v
}

// Take moves the value out of slot i and leaves the slot vacant.
func (b *Buffer[T]) Take(i int) T {
	s := b.slots(i + 1)
	v := s[i]
	var zero T
	s[i] = zero
	return v
}

// ShiftRight moves slots [at, length) one place to the right, opening a
// vacant slot at at. The buffer must have room for length+1 slots.
func (b *Buffer[T]) ShiftRight(at, length int) {
	s := b.slots(length + 1)
	copy(s[at+1:], s[at:length])
	var zero T
	s[at] = zero
}

// ShiftLeft closes the vacant slot at at by moving slots (at, length) one
// place to the left. Slot length-1 is vacant afterwards.
func (b *Buffer[T]) ShiftLeft(at, length int) {
	s := b.slots(length)
	copy(s[at:], s[at+1:length])
	var zero T
	s[length-1] = zero
}

// Swap exchanges slots i and j.
func (b *Buffer[T]) Swap(i, j int) {
	s := b.slots(max(i, j) + 1)
	s[i], s[j] = s[j], s[i]
}

// MoveTo relocates slots [from, to) into dst starting at dstAt. The source
// slots are vacant afterwards; dst must already have room for them.
func (b *Buffer[T]) MoveTo(dst *Buffer[T], dstAt, from, to int) {
	if to <= from {
		return
	}
	src := b.slots(to)[from:to]
	copy(dst.slots(dstAt+len(src))[dstAt:], src)
	clear(src)
}

// Fill writes n copies of v into slots [at, at+n). The first n-1 copies go
// through CloneValue and the last one is v itself.
func (b *Buffer[T]) Fill(at, n int, v T) {
	if n <= 0 {
		return
	}
	s := b.slots(at + n)[at:]
	for i := 0; i < n-1; i++ {
		s[i] = CloneValue(v)
	}
	s[n-1] = v
}

// CloneTo copies the live prefix [0, length) into dst through CloneValue.
// dst must have room for length slots and hold no live values.
func (b *Buffer[T]) CloneTo(dst *Buffer[T], length int) {
	src := b.slots(length)
	out := dst.slots(length)
	for i := range src {
		out[i] = CloneValue(src[i])
	}
}

// Drop finalizes the value in slot i and leaves the slot vacant.
func (b *Buffer[T]) Drop(i int) {
	DropValue(b.At(i))
}

// DropRange finalizes slots [from, to) in index order.
func (b *Buffer[T]) DropRange(from, to int) {
	if to <= from {
		return
	}
	s := b.slots(to)[from:to]
	if drops[T]() {
		for i := range s {
			dropPtr(&s[i])
		}
	}
	clear(s)
}
