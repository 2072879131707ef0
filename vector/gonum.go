package vector

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Float64s returns the elements of v converted to float64.
func Float64s[T Number](v Vector[T]) []float64 {
	values := v.Slice()
	out := make([]float64, len(values))
	for i, val := range values {
		out[i] = float64(val)
	}
	return out
}

// ToVecDense copies v into a gonum column vector. An empty v yields an empty
// (zero-value) VecDense, since mat.NewVecDense rejects zero length.
func ToVecDense[T Number](v Vector[T]) *mat.VecDense {
	if v.Len() == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(v.Len(), Float64s(v))
}

// FromVecDense copies any gonum vector into a Dynamic.
func FromVecDense(v mat.Vector) *Dynamic[float64] {
	out := NewDynamic[float64](v.Len())
	for i := range out.values {
		out.values[i] = v.AtVec(i)
	}
	return out
}

// AddDense returns a + b computed by gonum. Unlike mat.VecDense.AddVec it
// reports unequal lengths as ErrLengthMismatch instead of panicking.
func AddDense(a, b mat.Vector) (*mat.VecDense, error) {
	if a.Len() != b.Len() {
		return nil, lengthError(a.Len(), b.Len())
	}
	var sum mat.VecDense
	if a.Len() == 0 {
		return &sum, nil
	}
	sum.AddVec(a, b)
	return &sum, nil
}

// Norm returns the Euclidean norm of v.
func Norm[T Number](v Vector[T]) float64 {
	return floats.Norm(Float64s(v), 2)
}

// Fixed3ToR3 converts v to a gonum spatial vector.
func Fixed3ToR3[T Number](v Fixed3[T]) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// Fixed3FromR3 converts a gonum spatial vector to a Fixed3.
func Fixed3FromR3(v r3.Vec) Fixed3[float64] {
	return Fixed3[float64]{v.X, v.Y, v.Z}
}
