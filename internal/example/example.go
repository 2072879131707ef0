// Package example runs the vector demonstration printed by the vecadd
// command: a fixed vector a, a dynamic vector b filled by index, and their
// sum c.
package example

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/CK6170/vecadd-go/ui"
	"github.com/CK6170/vecadd-go/vector"
)

// Vectors are the operands and result of the demonstration.
type Vectors struct {
	A vector.Fixed3[int]
	B *vector.Dynamic[int]
	C *vector.Dynamic[int]
}

// Build constructs a = (4, -2, 5), b = (2, 5, -3) and c = a + b.
func Build(log *zap.Logger) (*Vectors, error) {
	a := vector.Fixed3[int]{4, -2, 5}
	log.Debug("built fixed vector", zap.String("a", a.String()))

	b := vector.NewDynamic[int](3)
	for i, val := range []int{2, 5, -3} {
		if err := b.Set(i, val); err != nil {
			return nil, fmt.Errorf("set b[%d]: %w", i, err)
		}
	}
	log.Debug("built dynamic vector", zap.String("b", b.String()), zap.Int("len", b.Len()))

	c, err := vector.Add[int](a, b)
	if err != nil {
		return nil, fmt.Errorf("add a, b: %w", err)
	}
	log.Debug("added vectors", zap.String("c", c.String()))
	return &Vectors{A: a, B: b, C: c}, nil
}

// Run builds the vectors and writes the report to out.
func Run(out ui.Printer, log *zap.Logger) error {
	v, err := Build(log)
	if err != nil {
		return err
	}
	out.Greenf("Vector example:\n\n")
	if err := vector.PrintVector[int](out.W, v.A, "Fixed3[int] a:"); err != nil {
		return err
	}
	if err := vector.PrintVector[int](out.W, v.B, "Dynamic[int] b:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out.W, "Adding a, b:"); err != nil {
		return err
	}
	return vector.PrintVector[int](out.W, v.C, "c =")
}
