package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// UserRepository is the CRUD façade over the users collection.
type UserRepository interface {
	List(ctx context.Context) []domain.User
	Get(ctx context.Context, id int) (domain.User, bool)
	FindByUsername(ctx context.Context, username string) (domain.User, bool)
	// Add assigns the next id and stamps the joined date; the incoming id is ignored.
	Add(ctx context.Context, user domain.User) (domain.User, error)
	// Update shallow-merges patch over the stored user. It reports false when
	// no user has that id; nothing is written in that case.
	Update(ctx context.Context, id int, patch domain.UserPatch) (bool, error)
	// Delete reports whether a user with that id existed.
	Delete(ctx context.Context, id int) (bool, error)
}

// SessionRepository persists the single current-session marker.
type SessionRepository interface {
	// Load returns the stored user snapshot. Missing, null or unreadable
	// markers all read as absent.
	Load(ctx context.Context) (*domain.User, bool)
	Save(ctx context.Context, user domain.User) error
	Clear(ctx context.Context) error
}
