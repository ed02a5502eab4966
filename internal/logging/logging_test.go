package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/benchplot/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "debug", "json")
	require.NoError(t, err)

	l.Debug("timing row", "size", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "timing row", rec["msg"])
	assert.Equal(t, float64(3), rec["size"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "warn", "text")
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_Invalid(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = logging.New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, logging.ErrFormat)
}
