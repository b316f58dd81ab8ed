package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown_RunsHooksInReverseOrder(t *testing.T) {
	m := New(0, nil)

	var order []string
	for _, name := range []string{"postgres", "monitor", "http_server"} {
		captured := name
		m.Register(captured, func(ctx context.Context) error {
			order = append(order, captured)
			return nil
		})
	}

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"http_server", "monitor", "postgres"}, order)
}

func TestShutdown_CollectsHookErrors(t *testing.T) {
	m := New(0, nil)

	hookErr := errors.New("close failed")
	m.Register("broken", func(ctx context.Context) error { return hookErr })

	var ran bool
	m.Register("healthy", func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, hookErr)
	assert.True(t, ran, "remaining hooks still run after a failure")
}

func TestRegister_IgnoresNilHook(t *testing.T) {
	m := New(0, nil)
	m.Register("noop", nil)
	assert.NoError(t, m.Shutdown(context.Background()))
}
