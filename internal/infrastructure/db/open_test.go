package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/cms-console/internal/infrastructure/db/bolt"
	"github.com/99minutos/cms-console/internal/infrastructure/db/memory"
	"github.com/99minutos/cms-console/internal/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	s, closeFn, err := Open(context.Background(), &config.Config{StoreDriver: config.DriverMemory}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, s)
	assert.NoError(t, closeFn(context.Background()))
}

func TestOpen_Bolt(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.DriverBolt}
	cfg.Bolt.Path = filepath.Join(t.TempDir(), "console.db")

	s, closeFn, err := Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &bolt.Store{}, s)
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, closeFn(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{StoreDriver: "sqlite"}, zerolog.Nop())
	assert.Error(t, err)
}
