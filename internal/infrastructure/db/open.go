// Package db selects and opens the configured ports.Store backend.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/db/bolt"
	"github.com/99minutos/cms-console/internal/infrastructure/db/memory"
	"github.com/99minutos/cms-console/internal/infrastructure/db/mongo"
	"github.com/99minutos/cms-console/internal/infrastructure/db/redis"
	"github.com/99minutos/cms-console/internal/pkg/config"
)

// CloseFunc releases the backend.
type CloseFunc func(ctx context.Context) error

// Open connects the backend named by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.Store, CloseFunc, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return memory.NewStore(), func(context.Context) error { return nil }, nil

	case config.DriverBolt, "":
		s, err := bolt.Open(bolt.Options{Path: cfg.Bolt.Path})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Bolt.Path).Msg("bolt store opened")
		return s, func(context.Context) error { return s.Close() }, nil

	case config.DriverRedis:
		s, err := redis.Open(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis store connected")
		return s, func(context.Context) error { return s.Close() }, nil

	case config.DriverMongo:
		s, err := mongo.Open(ctx, mongo.Options{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("db", cfg.Mongo.Database).Str("collection", cfg.Mongo.Collection).Msg("mongo store connected")
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
