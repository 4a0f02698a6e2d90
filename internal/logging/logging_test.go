package logging_test

import (
	"context"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/rpg-rooms/internal/logging"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "", want: zapcore.InfoLevel},
		{in: "DEBUG", want: zapcore.DebugLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "loud", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := logging.New("debug", "console", "rooms")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = logging.New("warn", "json", "rooms")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = logging.New("loud", "json", "rooms")
	assert.Error(t, err)
}

func TestInterceptorLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.InterceptorLogger(zap.New(core))

	logger.Log(context.Background(), grpc_logging.LevelWarn, "finished call",
		"grpc.method", "AddTemplate",
		"grpc.code", 3,
		"grpc.ok", false,
		"grpc.time_ms", 1.5,
		"dangling",
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "finished call", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "AddTemplate", ctx["grpc.method"])
	assert.Equal(t, int64(3), ctx["grpc.code"])
	assert.Equal(t, false, ctx["grpc.ok"])
	assert.Equal(t, 1.5, ctx["grpc.time_ms"])
	assert.NotContains(t, ctx, "dangling")
}
