package vector

// Dynamic is a vector whose length is chosen at runtime. The length is fixed
// once the vector is created; only the element values change.
type Dynamic[T Number] struct {
	values []T
}

// NewDynamic allocates a vector of the given length initialized with zeros.
// A negative length yields an empty vector.
func NewDynamic[T Number](length int) *Dynamic[T] {
	if length < 0 {
		length = 0
	}
	return &Dynamic[T]{values: make([]T, length)}
}

// DynamicOf returns a vector holding a copy of values.
func DynamicOf[T Number](values ...T) *Dynamic[T] {
	return &Dynamic[T]{values: append(make([]T, 0, len(values)), values...)}
}

// NewDynamicWithValue allocates a vector of the given length and fills it
// with val.
func NewDynamicWithValue[T Number](length int, val T) *Dynamic[T] {
	v := NewDynamic[T](length)
	for i := range v.values {
		v.values[i] = val
	}
	return v
}

// Len returns the number of elements.
func (v *Dynamic[T]) Len() int { return len(v.values) }

// At returns element i.
func (v *Dynamic[T]) At(i int) (T, error) { return at(v.values, i) }

// Set assigns element i. Out-of-range writes leave v unchanged.
func (v *Dynamic[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.values) {
		return indexError(i, len(v.values))
	}
	v.values[i] = val
	return nil
}

// Slice returns a copy of the elements.
func (v *Dynamic[T]) Slice() []T { return append([]T(nil), v.values...) }

func (v *Dynamic[T]) String() string { return format(v.values) }
