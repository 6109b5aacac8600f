package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// ProfileInput carries the editable profile fields of the signed-in user.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Bio       string
}

// SettingsService implements the account and maintenance actions of the
// settings and profile pages.
type SettingsService interface {
	// UpdateProfile rewrites the signed-in user and refreshes the session snapshot.
	UpdateProfile(ctx context.Context, in ProfileInput) (*domain.User, error)
	// DeleteAccount removes the signed-in user and logs out.
	DeleteAccount(ctx context.Context) error
	// Reset wipes every collection and the session, then reseeds the defaults.
	Reset(ctx context.Context) error
}
