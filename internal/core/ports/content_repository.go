package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// ContentRepository is the CRUD façade over the content collection.
type ContentRepository interface {
	List(ctx context.Context) []domain.Content
	Get(ctx context.Context, id int) (domain.Content, bool)
	Add(ctx context.Context, content domain.Content) (domain.Content, error)
	Update(ctx context.Context, id int, patch domain.ContentPatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
