package vector

// Fixed2 is a vector of exactly two elements.
type Fixed2[T Number] [2]T

// Fixed3 is a vector of exactly three elements.
//
// The length is part of the type: a Fixed3 literal with more than three
// elements does not compile, and Fixed3.Add only accepts another Fixed3.
type Fixed3[T Number] [3]T

// Fixed4 is a vector of exactly four elements.
type Fixed4[T Number] [4]T

// NewFixed2 returns the vector (x, y).
func NewFixed2[T Number](x, y T) Fixed2[T] { return Fixed2[T]{x, y} }

// NewFixed3 returns the vector (x, y, z).
func NewFixed3[T Number](x, y, z T) Fixed3[T] { return Fixed3[T]{x, y, z} }

// NewFixed4 returns the vector (x, y, z, w).
func NewFixed4[T Number](x, y, z, w T) Fixed4[T] { return Fixed4[T]{x, y, z, w} }

func (v Fixed2[T]) Len() int { return len(v) }
func (v Fixed2[T]) At(i int) (T, error) { return at(v[:], i) }
func (v Fixed2[T]) Slice() []T { return append([]T(nil), v[:]...) }
func (v Fixed2[T]) String() string { return format(v[:]) }
func (v Fixed2[T]) Add(o Fixed2[T]) Fixed2[T] {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

func (v Fixed3[T]) Len() int { return len(v) }
func (v Fixed3[T]) At(i int) (T, error) { return at(v[:], i) }
func (v Fixed3[T]) Slice() []T { return append([]T(nil), v[:]...) }
func (v Fixed3[T]) String() string { return format(v[:]) }
func (v Fixed3[T]) Add(o Fixed3[T]) Fixed3[T] {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

func (v Fixed4[T]) Len() int { return len(v) }
func (v Fixed4[T]) At(i int) (T, error) { return at(v[:], i) }
func (v Fixed4[T]) Slice() []T { return append([]T(nil), v[:]...) }
func (v Fixed4[T]) String() string { return format(v[:]) }
func (v Fixed4[T]) Add(o Fixed4[T]) Fixed4[T] {
	for i := range v {
		v[i] += o[i]
	}
	return v
}
