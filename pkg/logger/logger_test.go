package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avkit/extronctl/pkg/logger"
)

func TestNewWithWriterJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf)
	log.Info().Str("device", "lobby").Msg("input selected")

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "input selected", entry["message"])
	require.Equal(t, "lobby", entry["device"])
	require.Contains(t, entry, "time")
}

func TestNewWithWriterLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(logger.LogLevelError, logger.JSONLoggingFormat, &buf)
	log.Info().Msg("should be filtered")

	require.Empty(t, buf.String())

	log.Error().Msg("should appear")

	require.Contains(t, buf.String(), "should appear")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf)

	ctx := context.WithValue(context.Background(), logger.ContextKeyRequestID, "req-42")
	ctxLog := log.WithContext(ctx)
	ctxLog.Info().Msg("scoped")

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "req-42", entry["request_id"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(logger.LogLevelInfo, logger.JSONLoggingFormat, &buf)
	ctxLog := log.WithContext(context.Background())
	ctxLog.Info().Msg("scoped")

	require.NotContains(t, buf.String(), "request_id")
}
