package logging

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("WARN").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("chatty").GetLevel())
}

func TestFromContext(t *testing.T) {
	logger := New("info")

	bare := FromContext(context.Background(), logger)
	assert.Same(t, logger, bare.Logger)
	assert.Empty(t, bare.Data)

	entry := logger.WithField("request_id", "abc")
	got := FromContext(WithEntry(context.Background(), entry), logger)
	assert.Same(t, entry, got)
	assert.Equal(t, "abc", got.Data["request_id"])
}
