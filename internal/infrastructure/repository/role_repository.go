package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

type RoleRepository struct {
	col *storage.Collection[domain.Role]
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(store ports.Store, log zerolog.Logger) *RoleRepository {
	return &RoleRepository{
		col: storage.NewCollection(store, storage.Roles, func(r domain.Role) int { return r.ID }, log),
	}
}

func (r *RoleRepository) List(ctx context.Context) []domain.Role {
	return r.col.Load(ctx)
}

func (r *RoleRepository) Get(ctx context.Context, id int) (domain.Role, bool) {
	return r.col.Find(ctx, id)
}

func (r *RoleRepository) Add(ctx context.Context, role domain.Role) (domain.Role, error) {
	return r.col.Append(ctx, func(id int) domain.Role {
		role.ID = id
		if role.Permissions == nil {
			role.Permissions = []domain.Permission{}
		}
		return role
	})
}

func (r *RoleRepository) Update(ctx context.Context, id int, patch domain.RolePatch) (bool, error) {
	return r.col.Modify(ctx, id, patch.Merge)
}

func (r *RoleRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.col.Remove(ctx, id)
}
