package libpillowfight

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalevy1/libpillowfight/images"
	"github.com/shalevy1/libpillowfight/matrix"
)

func TestSetLoggerReachesPackages(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := images.FromBuffer(make([]byte, 3), 1, 1)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "rejected pixel buffer")

	buf.Reset()
	matrix.Convolution(matrix.New(4, 3), matrix.New(2, 2))
	assert.Contains(t, buf.String(), "image_width=4")
	assert.Contains(t, buf.String(), "kernel_height=2")
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
