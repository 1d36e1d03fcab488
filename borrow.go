package soa

import "fmt"

// Borrow tracks the views a container has handed out through callbacks and
// range-over-func iteration, and rejects operations that would conflict with
// them:
//
//   - any number of shared borrows may coexist;
//   - an exclusive borrow excludes every other borrow;
//   - mutating the container while any borrow is live panics.
//
// Borrow is not goroutine-safe. Containers are owned by one goroutine at a
// time and Borrow only catches re-entrant misuse on that goroutine, such as
// pushing onto a container from inside its own range loop.
//
// The zero value holds no borrows.
type Borrow struct {
	shared    int
	exclusive bool
}

// BorrowError is the panic value for a conflicting borrow or mutation.
type BorrowError struct {
	Op        string
	Shared    int
	Exclusive bool
}

func (e *BorrowError) Error() string {
	if e.Exclusive {
		return fmt.Sprintf("soa: %s while the container is exclusively borrowed", e.Op)
	}
	return fmt.Sprintf("soa: %s while the container is borrowed by %d view(s)", e.Op, e.Shared)
}

// Shared takes a shared borrow for op and returns the function releasing it.
func (b *Borrow) Shared(op string) (release func()) {
	if b.exclusive {
		panic(b.conflict(op))
	}
	b.shared++
	released := false
	return func() {
		if !released {
			released = true
			b.shared--
		}
	}
}

// Exclusive takes the exclusive borrow for op and returns the function
// releasing it.
func (b *Borrow) Exclusive(op string) (release func()) {
	if b.exclusive || b.shared > 0 {
		panic(b.conflict(op))
	}
	b.exclusive = true
	released := false
	return func() {
		if !released {
			released = true
			b.exclusive = false
		}
	}
}

// CheckMutable panics if op would mutate a container with live borrows.
func (b *Borrow) CheckMutable(op string) {
	if b.exclusive || b.shared > 0 {
		panic(b.conflict(op))
	}
}

// Borrowed reports whether any borrow is live.
func (b *Borrow) Borrowed() bool {
	return b.exclusive || b.shared > 0
}

func (b *Borrow) conflict(op string) *BorrowError {
	return &BorrowError{Op: op, Shared: b.shared, Exclusive: b.exclusive}
}
