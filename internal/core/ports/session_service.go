package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// SessionService manages the current-session marker. It performs no
// credential verification.
type SessionService interface {
	Login(ctx context.Context, user domain.User) error
	// LoginByUsername resolves the user and refuses banned accounts.
	LoginByUsername(ctx context.Context, username string) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, bool)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}
