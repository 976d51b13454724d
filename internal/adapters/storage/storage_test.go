package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-companion/internal/adapters/storage/jsonfile"
	"pet-companion/internal/adapters/storage/memory"
	"pet-companion/internal/adapters/storage/sqlite"
	"pet-companion/internal/platform/config"
)

func TestOpen_ByEngine(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name   string
		cfg    config.StoreConfig
		assert func(t *testing.T, v any)
	}{
		{"memory", config.StoreConfig{Engine: "memory"}, func(t *testing.T, v any) { assert.IsType(t, &memory.KVStore{}, v) }},
		{"default sqlite", config.StoreConfig{Path: filepath.Join(dir, "a.db")}, func(t *testing.T, v any) { assert.IsType(t, &sqlite.KVStore{}, v) }},
		{"json", config.StoreConfig{Engine: " JSON ", Path: filepath.Join(dir, "a.json")}, func(t *testing.T, v any) { assert.IsType(t, &jsonfile.KVStore{}, v) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(context.Background(), tc.cfg)
			require.NoError(t, err)
			defer s.Close()
			tc.assert(t, s)
		})
	}
}

func TestOpen_UnknownEngine(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Engine: "redis"})
	assert.ErrorContains(t, err, "unsupported store engine")
}
