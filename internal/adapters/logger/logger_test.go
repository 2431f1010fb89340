package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.vvm.dev/vvm/internal/adapters/logger"
)

func TestLogger(t *testing.T) {
	l := logger.New()
	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	l.Info("installing version")
	l.Warn("cache write skipped")
	l.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "installing version")
	assert.Contains(t, out, "cache write skipped")
	assert.Contains(t, out, "boom")
}
