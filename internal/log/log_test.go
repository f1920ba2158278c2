package log_test

import (
	"testing"

	"github.com/plus3/sceneloop/internal/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.LevelDebug, false},
		{"INFO", log.LevelInfo, false},
		{"", log.LevelInfo, false},
		{"warning", log.LevelWarn, false},
		{"error", log.LevelError, false},
		{"verbose", log.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := log.ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestLoggerWith(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := log.FromZap(zap.New(core)).With(log.String("scene", "torus"))

	logger.Info("frame", log.Uint64("index", 3))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "torus", ctx["scene"])
		assert.Equal(t, uint64(3), ctx["index"])
	}
}

func TestNop(t *testing.T) {
	logger := log.Nop()
	logger.Error("dropped")
	assert.NoError(t, logger.Sync())
}
