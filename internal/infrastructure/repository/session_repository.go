package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

// SessionRepository stores the current user snapshot under storage.SessionKey.
type SessionRepository struct {
	store ports.Store
	log   zerolog.Logger
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(store ports.Store, log zerolog.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

func (r *SessionRepository) Load(ctx context.Context) (*domain.User, bool) {
	raw, err := r.store.Get(ctx, storage.SessionKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			r.log.Warn().Err(err).Msg("session read failed")
		}
		return nil, false
	}

	var u *domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		r.log.Warn().Err(err).Msg("session marker is corrupt")
		return nil, false
	}
	if u == nil {
		return nil, false
	}
	return u, true
}

func (r *SessionRepository) Save(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.store.Set(ctx, storage.SessionKey, raw); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.SessionKey)
}
