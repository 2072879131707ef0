package example

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/CK6170/vecadd-go/ui"
	"github.com/CK6170/vecadd-go/vector"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const wantReport = `Vector example:

Fixed3[int] a:
(  4 )
( -2 )
(  5 )

Dynamic[int] b:
(  2 )
(  5 )
( -3 )

Adding a, b:
c =
( 6 )
( 3 )
( 2 )

`

func TestBuild(t *testing.T) {
	v, err := Build(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, vector.Fixed3[int]{4, -2, 5}, v.A)
	assert.Equal(t, []int{2, 5, -3}, v.B.Slice())
	assert.Equal(t, []int{6, 3, 2}, v.C.Slice())
}

func TestRunReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(ui.Printer{W: &buf}, zap.NewNop()))
	assert.Equal(t, wantReport, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunWriteError(t *testing.T) {
	assert.Error(t, Run(ui.Printer{W: failWriter{}}, zap.NewNop()))
}
