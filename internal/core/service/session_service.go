package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/pkg/metrics"
)

type SessionService struct {
	users   ports.UserRepository
	session ports.SessionRepository
	logger  zerolog.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(users ports.UserRepository, session ports.SessionRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{users: users, session: session, logger: logger}
}

// Login stores a snapshot of user as the current session.
func (s *SessionService) Login(ctx context.Context, user domain.User) error {
	if err := s.session.Save(ctx, user); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	metrics.SessionsTotal.WithLabelValues("login").Inc()
	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("session started")
	return nil
}

// LoginByUsername looks the account up and starts a session for it. Banned
// accounts are refused.
func (s *SessionService) LoginByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := s.users.FindByUsername(ctx, username)
	if !ok {
		metrics.SessionsTotal.WithLabelValues("login_refused").Inc()
		return nil, domain.ErrUserNotFound
	}
	if user.IsBanned() {
		metrics.SessionsTotal.WithLabelValues("login_refused").Inc()
		s.logger.Warn().Int("user_id", user.ID).Msg("banned user attempted login")
		return nil, domain.ErrUserBanned
	}
	if err := s.Login(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SessionService) Current(ctx context.Context) (*domain.User, bool) {
	return s.session.Load(ctx)
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	metrics.SessionsTotal.WithLabelValues("logout").Inc()
	return nil
}

func (s *SessionService) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.session.Load(ctx)
	return ok
}
