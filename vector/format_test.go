package vector_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CK6170/vecadd-go/vector"
)

func TestColumnAlignsToWidestElement(t *testing.T) {
	got := vector.Column[int](vector.Fixed3[int]{4, -2, 5}, "")
	assert.Equal(t, "(  4 )\n( -2 )\n(  5 )\n", got)

	got = vector.Column[int](vector.DynamicOf(6, 3, 2), "")
	assert.Equal(t, "( 6 )\n( 3 )\n( 2 )\n", got)
}

func TestColumnVerb(t *testing.T) {
	got := vector.Column[float64](vector.NewFixed2(1.5, -10.0), "%.1f")
	assert.Equal(t, "(   1.5 )\n( -10.0 )\n", got)
}

func TestColumnEmpty(t *testing.T) {
	assert.Equal(t, "", vector.Column[int](vector.NewDynamic[int](0), ""))
}

func TestPrintVector(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, vector.PrintVector[int](&buf, vector.DynamicOf(2, 5, -3), "b:"))
	assert.Equal(t, "b:\n(  2 )\n(  5 )\n( -3 )\n\n", buf.String())
}
