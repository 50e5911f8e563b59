package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attestkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal any
	}{
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"client ip", logger.ClientIP("10.0.0.1"), "client_ip", "10.0.0.1"},
		{"component", logger.Component("twofa"), "component", "twofa"},
		{"event", logger.Event("seed_provisioned"), "event", "seed_provisioned"},
		{"commit hash", logger.CommitHash("deadbeef"), "commit_hash", "deadbeef"},
		{"key bits", logger.KeyBits(4096), "key_bits", int64(4096)},
		{"store", logger.Store("redis"), "store", "redis"},
		{"path", logger.Path("/data/seed.txt"), "path", "/data/seed.txt"},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantVal, tt.attr.Value.Any())
		})
	}
}

func TestEmptyIdentifiers(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
}
