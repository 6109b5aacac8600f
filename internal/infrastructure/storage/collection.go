// Package storage maps typed collections onto a key-value ports.Store.
//
// Each collection is one JSON array stored under a fixed key. Every mutation
// reads the whole array, changes it in memory and writes it back; there is no
// locking around that cycle, so concurrent writers on one collection can lose
// updates (last write wins).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/pkg/metrics"
)

// Collection is a typed view over one stored JSON array.
type Collection[T any] struct {
	store ports.Store
	name  Name
	idOf  func(T) int
	log   zerolog.Logger
}

// NewCollection binds name to store. idOf extracts the record id.
func NewCollection[T any](store ports.Store, name Name, idOf func(T) int, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		store: store,
		name:  name,
		idOf:  idOf,
		log:   log.With().Str("collection", string(name)).Logger(),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() Name {
	return c.name
}

// Load reads the whole collection. A missing key, a backend failure or an
// undecodable value all yield an empty slice.
func (c *Collection[T]) Load(ctx context.Context) []T {
	items, err := c.load(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("store read failed, using empty collection")
		return []T{}
	}
	return items
}

// load is the read used before a write. A missing key or a corrupt value is
// an empty collection; a backend failure is returned so that the caller does
// not write a collection it never saw.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, Key(c.name))
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []T{}, nil
		}
		metrics.StoreReadFailuresTotal.WithLabelValues(string(c.name), "backend").Inc()
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("stored collection is corrupt, using empty collection")
		metrics.StoreReadFailuresTotal.WithLabelValues(string(c.name), "corrupt").Inc()
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the stored collection with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.store.Set(ctx, Key(c.name), raw); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

// Find returns the record with id.
func (c *Collection[T]) Find(ctx context.Context, id int) (T, bool) {
	for _, item := range c.Load(ctx) {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append assigns the next id, lets build produce the record and writes the
// collection back. build receives the new id. Nothing is written when the
// current collection cannot be read.
func (c *Collection[T]) Append(ctx context.Context, build func(id int) T) (T, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		c.observe("add", "error")
		return zero, err
	}
	item := build(NextID(items, c.idOf))

	if err := c.Save(ctx, append(items, item)); err != nil {
		c.observe("add", "error")
		return zero, err
	}
	c.observe("add", "ok")
	return item, nil
}

// Modify replaces the record with id by fn(record). It reports false, and
// writes nothing, when no record has that id.
func (c *Collection[T]) Modify(ctx context.Context, id int, fn func(T) T) (bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		c.observe("update", "error")
		return false, err
	}
	for i, item := range items {
		if c.idOf(item) != id {
			continue
		}
		items[i] = fn(item)
		if err := c.Save(ctx, items); err != nil {
			c.observe("update", "error")
			return false, err
		}
		c.observe("update", "ok")
		return true, nil
	}
	c.observe("update", "miss")
	return false, nil
}

// Remove filters the record with id out. It reports whether the collection shrank.
func (c *Collection[T]) Remove(ctx context.Context, id int) (bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		c.observe("delete", "error")
		return false, err
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		c.observe("delete", "miss")
		return false, nil
	}
	if err := c.Save(ctx, kept); err != nil {
		c.observe("delete", "error")
		return false, err
	}
	c.observe("delete", "ok")
	return true, nil
}

func (c *Collection[T]) observe(op, result string) {
	metrics.RepositoryOperationsTotal.WithLabelValues(string(c.name), op, result).Inc()
}

// NextID returns max(id)+1 over items, or 1 when items is empty.
func NextID[T any](items []T, idOf func(T) int) int {
	next := 1
	for _, item := range items {
		if id := idOf(item); id >= next {
			next = id + 1
		}
	}
	return next
}
