package qr

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("renders a payment url", func(t *testing.T) {
		var buf bytes.Buffer
		generator := NewTerminalGenerator(&buf)

		err := generator.Generate(ctx, "solana:9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM?amount=1")
		require.NoError(t, err)
		assert.NotZero(t, buf.Len())
	})

	t.Run("rejects non payment urls", func(t *testing.T) {
		var buf bytes.Buffer
		generator := NewTerminalGenerator(&buf)

		err := generator.Generate(ctx, "https://example.com")
		require.Error(t, err)
		assert.Zero(t, buf.Len())
	})

	t.Run("rejects oversized urls", func(t *testing.T) {
		var buf bytes.Buffer
		generator := NewTerminalGenerator(&buf)

		err := generator.Generate(ctx, "solana:"+strings.Repeat("1", 3000))
		require.Error(t, err)
	})
}
