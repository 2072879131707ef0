package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewRedWriter(&buf).Write([]byte("boom"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "\033[31mboom\033[0m", buf.String())
}

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{W: &buf}
	p.Greenf("hello %d\n", 1)
	p.Warningf("careful\n")
	p.Debugf(false, "hidden\n")
	p.Debugf(true, "shown\n")
	assert.Equal(t, "hello 1\ncareful\n[DEBUG] shown\n", buf.String())
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	Printer{W: &buf, Color: true}.Greenf("ok")
	assert.Equal(t, "\033[92mok\033[0m", buf.String())
}
