package soa

import (
	"errors"
	"fmt"
)

// Precondition violations are programming errors: containers report them by
// panicking with one of the values below before any buffer is modified.
// Recovered values work with errors.Is and errors.As.

var (
	// ErrCapacityOverflow is raised when a requested capacity does not fit in
	// an int, or its byte size does not fit in the address space.
	ErrCapacityOverflow = errors.New("soa: capacity overflow")

	// ErrAliased is raised when a container is asked to append itself.
	ErrAliased = errors.New("soa: container appended to itself")
)

// IndexError reports an index outside the range an operation accepts.
type IndexError struct {
	Op    string
	Index int
	Len   int
	// Inclusive is set for operations that accept Index == Len
	// (Insert, SplitOff).
	Inclusive bool
}

func (e *IndexError) Error() string {
	if e.Inclusive {
		return fmt.Sprintf("soa: %s index (is %d) should be <= len (is %d)", e.Op, e.Index, e.Len)
	}
	return fmt.Sprintf("soa: %s index (is %d) should be < len (is %d)", e.Op, e.Index, e.Len)
}

// RangeError reports a sub-range [Start, End) that is not within [0, Len].
type RangeError struct {
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Start > e.End {
		return fmt.Sprintf("soa: slice index starts at %d but ends at %d", e.Start, e.End)
	}
	return fmt.Sprintf("soa: range [%d:%d] out of bounds for len %d", e.Start, e.End, e.Len)
}

// LengthError reports a negative length or count.
type LengthError struct {
	Op  string
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("soa: %s with negative length %d", e.Op, e.Len)
}

// CheckIndex panics unless 0 <= index < length.
func CheckIndex(op string, index, length int) {
	if index < 0 || index >= length {
		panic(&IndexError{Op: op, Index: index, Len: length})
	}
}

// CheckPosition panics unless 0 <= index <= length.
func CheckPosition(op string, index, length int) {
	if index < 0 || index > length {
		panic(&IndexError{Op: op, Index: index, Len: length, Inclusive: true})
	}
}

// CheckRange panics unless 0 <= start <= end <= length.
func CheckRange(start, end, length int) {
	if start < 0 || start > end || end > length {
		panic(&RangeError{Start: start, End: end, Len: length})
	}
}

// CheckLength panics when n is negative.
func CheckLength(op string, n int) {
	if n < 0 {
		panic(&LengthError{Op: op, Len: n})
	}
}
