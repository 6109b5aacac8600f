package repository

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

type UserRepository struct {
	col  *storage.Collection[domain.User]
	opts options
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(store ports.Store, log zerolog.Logger, opts ...Option) *UserRepository {
	return &UserRepository{
		col:  storage.NewCollection(store, storage.Users, func(u domain.User) int { return u.ID }, log),
		opts: buildOptions(opts),
	}
}

func (r *UserRepository) List(ctx context.Context) []domain.User {
	return r.col.Load(ctx)
}

func (r *UserRepository) Get(ctx context.Context, id int) (domain.User, bool) {
	return r.col.Find(ctx, id)
}

// FindByUsername matches usernames case-insensitively.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, bool) {
	username = strings.TrimSpace(username)
	for _, u := range r.col.Load(ctx) {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return domain.User{}, false
}

func (r *UserRepository) Add(ctx context.Context, user domain.User) (domain.User, error) {
	return r.col.Append(ctx, func(id int) domain.User {
		user.ID = id
		user.Joined = r.opts.today()
		if user.Status == "" {
			user.Status = domain.StatusActive
		}
		return user
	})
}

func (r *UserRepository) Update(ctx context.Context, id int, patch domain.UserPatch) (bool, error) {
	return r.col.Modify(ctx, id, patch.Merge)
}

func (r *UserRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.col.Remove(ctx, id)
}
