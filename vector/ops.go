package vector

// Add returns a + b element-wise. Either operand may be a fixed or a dynamic
// vector; the sum is always a new Dynamic that shares no storage with them.
//
// Operands of different lengths yield an error wrapping ErrLengthMismatch.
// Overflow follows T's native arithmetic.
func Add[T Number](a, b Vector[T]) (*Dynamic[T], error) {
	if a.Len() != b.Len() {
		return nil, lengthError(a.Len(), b.Len())
	}
	result := &Dynamic[T]{values: a.Slice()}
	for i, x := range b.Slice() {
		result.values[i] += x
	}
	return result, nil
}

// Sub returns a - b element-wise, with the same length contract as Add.
func Sub[T Number](a, b Vector[T]) (*Dynamic[T], error) {
	if a.Len() != b.Len() {
		return nil, lengthError(a.Len(), b.Len())
	}
	result := &Dynamic[T]{values: a.Slice()}
	for i, x := range b.Slice() {
		result.values[i] -= x
	}
	return result, nil
}

// Equal reports whether a and b have the same length and elements.
func Equal[T Number](a, b Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bs := b.Slice()
	for i, x := range a.Slice() {
		if x != bs[i] {
			return false
		}
	}
	return true
}
