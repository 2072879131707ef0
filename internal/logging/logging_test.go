package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("built vector", zap.Int("len", 3))
	log.Info("info")
	assert.Empty(t, buf.String())

	log.Warn("careful")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "careful")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug("built vector", zap.Int("len", 3))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), `"len": 3`)
}
