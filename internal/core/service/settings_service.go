package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

type SettingsService struct {
	users   ports.UserRepository
	session ports.SessionRepository
	data    ports.DataInitializer
	logger  zerolog.Logger
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(users ports.UserRepository, session ports.SessionRepository, data ports.DataInitializer, logger zerolog.Logger) *SettingsService {
	return &SettingsService{users: users, session: session, data: data, logger: logger}
}

// UpdateProfile sets name ("first last"), email and bio on the signed-in user.
func (s *SettingsService) UpdateProfile(ctx context.Context, in ports.ProfileInput) (*domain.User, error) {
	current, ok := s.session.Load(ctx)
	if !ok {
		return nil, domain.ErrNoSession
	}

	name := strings.TrimSpace(in.FirstName + " " + in.LastName)
	patch := domain.UserPatch{Name: &name, Email: &in.Email, Bio: &in.Bio}
	updated, err := s.users.Update(ctx, current.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if !updated {
		return nil, domain.ErrUserNotFound
	}

	user, ok := s.users.Get(ctx, current.ID)
	if !ok {
		return nil, fmt.Errorf("reload user %d: %w", current.ID, domain.ErrUserNotFound)
	}
	if err := s.session.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}
	s.logger.Info().Int("user_id", user.ID).Msg("profile updated")
	return &user, nil
}

// DeleteAccount removes the signed-in user and ends the session.
func (s *SettingsService) DeleteAccount(ctx context.Context) error {
	current, ok := s.session.Load(ctx)
	if !ok {
		return domain.ErrNoSession
	}
	if _, err := s.users.Delete(ctx, current.ID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	s.logger.Warn().Int("user_id", current.ID).Msg("account deleted")
	return nil
}

func (s *SettingsService) Reset(ctx context.Context) error {
	if err := s.data.Clear(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := s.data.Initialize(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
