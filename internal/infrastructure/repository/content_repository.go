package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

type ContentRepository struct {
	col *storage.Collection[domain.Content]
}

var _ ports.ContentRepository = (*ContentRepository)(nil)

func NewContentRepository(store ports.Store, log zerolog.Logger) *ContentRepository {
	return &ContentRepository{
		col: storage.NewCollection(store, storage.Content, func(c domain.Content) int { return c.ID }, log),
	}
}

func (r *ContentRepository) List(ctx context.Context) []domain.Content {
	return r.col.Load(ctx)
}

func (r *ContentRepository) Get(ctx context.Context, id int) (domain.Content, bool) {
	return r.col.Find(ctx, id)
}

func (r *ContentRepository) Add(ctx context.Context, content domain.Content) (domain.Content, error) {
	return r.col.Append(ctx, func(id int) domain.Content {
		content.ID = id
		return content
	})
}

func (r *ContentRepository) Update(ctx context.Context, id int, patch domain.ContentPatch) (bool, error) {
	return r.col.Modify(ctx, id, patch.Merge)
}

func (r *ContentRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.col.Remove(ctx, id)
}
