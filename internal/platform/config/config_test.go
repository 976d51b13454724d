package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.Store.Engine)
	assert.Equal(t, "data/pet-companion.db", cfg.Store.Path)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, 1200*time.Millisecond, cfg.ChatReplyDelay)
	assert.Equal(t, "pet-companion", cfg.AppName)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"PORT":             "9090",
		"STORE_ENGINE":     "json",
		"STORE_PATH":       "/tmp/state.json",
		"CHAT_REPLY_DELAY": "5ms",
		"S3_PATH_STYLE":    "true",
	}})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "json", cfg.Store.Engine)
	assert.Equal(t, 5*time.Millisecond, cfg.ChatReplyDelay)
	assert.True(t, cfg.Store.S3PathStyle)
}

func TestParse_RequiresEngineSettings(t *testing.T) {
	_, err := Parse(env.Options{Environment: map[string]string{"STORE_ENGINE": "postgres"}})
	assert.Error(t, err)

	_, err = Parse(env.Options{Environment: map[string]string{"STORE_ENGINE": "s3"}})
	assert.Error(t, err)

	_, err = Parse(env.Options{Environment: map[string]string{"STATE_CACHE_SIZE": "-1"}})
	assert.Error(t, err)
}
