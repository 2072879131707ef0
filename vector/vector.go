// Package vector provides small dense numeric vectors: array-backed fixed-size
// vectors (Fixed2, Fixed3, Fixed4) whose length is part of the type, and the
// runtime-sized Dynamic vector.
//
// Both kinds implement Vector, so the element-wise operations (Add, Sub,
// Equal) accept any mix of them. Results are always returned as *Dynamic.
package vector

import (
	"errors"
	"fmt"
)

// Number is the set of element types a vector can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is the read-only view shared by fixed and dynamic vectors.
type Vector[T Number] interface {
	// Len returns the number of elements.
	Len() int
	// At returns element i, or an error wrapping ErrIndexOutOfRange.
	At(i int) (T, error)
	// Slice returns a copy of the elements in order.
	Slice() []T
}

var (
	// ErrLengthMismatch is returned when two operands have different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")
	// ErrIndexOutOfRange is returned for reads or writes outside [0, Len).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}

func lengthError(a, b int) error {
	return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, a, b)
}

// at is the bounds-checked read used by every vector kind.
func at[T Number](values []T, i int) (T, error) {
	if i < 0 || i >= len(values) {
		var zero T
		return zero, indexError(i, len(values))
	}
	return values[i], nil
}
