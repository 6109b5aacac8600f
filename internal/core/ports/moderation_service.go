package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// BanResult describes the outcome of a ban.
type BanResult struct {
	User  domain.User
	Entry domain.BlacklistEntry
	// Created is false when the user already had a blacklist entry.
	Created bool
}

// ModerationService coordinates moderation across the users, blacklist and
// audit collections. None of its operations are atomic.
type ModerationService interface {
	// BanUser marks the user banned and ensures one blacklist entry exists.
	// Unknown ids return domain.ErrUserNotFound and change nothing.
	BanUser(ctx context.Context, userID int) (*BanResult, error)
	// Unblacklist removes a blacklist entry; the user's status is unchanged.
	Unblacklist(ctx context.Context, entryID int) (bool, error)
	// ReconcileBans creates the missing blacklist entry for every banned user
	// and returns how many were created.
	ReconcileBans(ctx context.Context) (int, error)
}
