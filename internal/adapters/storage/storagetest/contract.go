// Package storagetest tiene el contrato común que cumplen todos los
// adapters de kvstore.Store.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-companion/internal/ports/kvstore"
)

// Run corre el contrato. open debe devolver un store vacío; Run lo cierra.
func Run(t *testing.T, open func(t *testing.T) kvstore.Store) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		v, ok, err := s.Get(context.Background(), "PETS_KEY")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		defer s.Close()

		require.NoError(t, s.Set(ctx, "PETS_KEY", `[{"id":"1"}]`))
		require.NoError(t, s.Set(ctx, "PETS_KEY", `[{"id":"2"}]`))
		require.NoError(t, s.Set(ctx, "FEEDING_KEY", `[]`))

		v, ok, err := s.Get(ctx, "PETS_KEY")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"2"}]`, v)

		v, ok, err = s.Get(ctx, "FEEDING_KEY")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, v)
	})

	t.Run("remove", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		defer s.Close()

		require.NoError(t, s.Set(ctx, "CHAT_MESSAGES_KEY", `[]`))
		require.NoError(t, s.Remove(ctx, "CHAT_MESSAGES_KEY"))
		require.NoError(t, s.Remove(ctx, "CHAT_MESSAGES_KEY"), "removing twice is fine")

		_, ok, err := s.Get(ctx, "CHAT_MESSAGES_KEY")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unicode value", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		defer s.Close()

		val := `[{"name":"Ñandú 🐾","notes":"línea1\nlínea2"}]`
		require.NoError(t, s.Set(ctx, "PETS_KEY", val))

		v, _, err := s.Get(ctx, "PETS_KEY")
		require.NoError(t, err)
		assert.Equal(t, val, v)
	})
}
