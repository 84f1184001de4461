package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/polconv/internal/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, zapcore.DebugLevel)
	log.Debug("stokes converter built", zap.String("inputs", "RR,LL"), zap.Int("rank", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "stokes converter built", entry["message"])
	require.Equal(t, "RR,LL", entry["inputs"])
	require.EqualValues(t, 2, entry["rank"])

	ts, ok := entry["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.Level(false))
	log.Debug("hidden")
	require.Zero(t, buf.Len())

	log.Info("shown")
	require.Contains(t, buf.String(), `"message":"shown"`)

	require.Equal(t, zapcore.DebugLevel, logging.Level(true))
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() { logging.Nop().Error("dropped") })
}
