package logger

import (
	"context"
	"testing"

	"github.com/hahaha8459812/simple-ai-drawing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(config.LogConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestCustomLoggerWithDoesNotMutateParent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	parent := NewCustomLogger(zap.New(core))
	child := parent.With("requestId", "abc")

	child.Infof("child %d", 1)
	parent.Infof("parent %d", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "child 1", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["requestId"])
	assert.Equal(t, "parent 2", entries[1].Message)
	assert.NotContains(t, entries[1].ContextMap(), "requestId")
}

func TestContextLogger(t *testing.T) {
	assert.NotNil(t, FromContextOrDiscard(context.Background()))

	core, logs := observer.New(zapcore.InfoLevel)
	l := NewCustomLogger(zap.New(core))
	ctx := NewContext(context.Background(), l)
	FromContextOrDiscard(ctx).Infof("hello")
	assert.Equal(t, 1, logs.Len())
}
