package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// RoleRepository is the CRUD façade over the roles collection.
type RoleRepository interface {
	List(ctx context.Context) []domain.Role
	Get(ctx context.Context, id int) (domain.Role, bool)
	Add(ctx context.Context, role domain.Role) (domain.Role, error)
	Update(ctx context.Context, id int, patch domain.RolePatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
