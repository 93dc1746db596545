package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/podfiler/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	lg := slog.New(h).With("job", "ios")

	lg.Info("hidden")
	lg.Warn("stale output", "pods", 3)

	assert.Equal(t, "! stale output job=ios pods=3\n", buf.String())
}
