package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, InitConfig())

	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.OpTimeout)
	assert.Equal(t, time.Hour, cfg.Feed.CacheTTL)
	assert.Equal(t, 100, cfg.Feed.MaxCached)
	assert.Equal(t, 10, cfg.Feed.DefaultLimit)
	assert.True(t, cfg.Feed.WarmOnBoot)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("FEED_CACHETTL", "90s")
	t.Setenv("REDIS_ADDR", "cache:6380")

	require.NoError(t, InitConfig())

	assert.Equal(t, 90*time.Second, Feed().CacheTTL)
	assert.Equal(t, "cache:6380", GetConfig().Redis.Addr)
}
