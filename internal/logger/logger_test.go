package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the logger stored in ctx", func(t *testing.T) {
		l := zap.NewNop().Sugar()
		ctx := WithLogger(context.Background(), l)
		require.Same(t, l, FromContext(ctx))
	})

	t.Run("falls back to the global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
