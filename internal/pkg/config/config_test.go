package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverBolt, cfg.StoreDriver)
	assert.Equal(t, "data/cms-console.db", cfg.Bolt.Path)
	assert.Equal(t, "cms_console", cfg.Mongo.Database)
	assert.Equal(t, "kv", cfg.Mongo.Collection)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER":     "redis",
		"REDIS_ADDR":       "cache:6380",
		"REDIS_DB":         "2",
		"SEED_ON_START":    "false",
		"SHUTDOWN_TIMEOUT": "3s",
		"ENV":              "production",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadWith_RejectsUnknownDriver(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER": "sqlite",
	}))
	assert.Error(t, err)
}
