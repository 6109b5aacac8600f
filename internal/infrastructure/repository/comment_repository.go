package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

type CommentRepository struct {
	col     *storage.Collection[domain.Comment]
	users   ports.UserRepository
	content ports.ContentRepository
	opts    options
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(store ports.Store, users ports.UserRepository, content ports.ContentRepository, log zerolog.Logger, opts ...Option) *CommentRepository {
	return &CommentRepository{
		col:     storage.NewCollection(store, storage.Comments, func(c domain.Comment) int { return c.ID }, log),
		users:   users,
		content: content,
		opts:    buildOptions(opts),
	}
}

func (r *CommentRepository) List(ctx context.Context) []domain.Comment {
	return r.col.Load(ctx)
}

func (r *CommentRepository) Get(ctx context.Context, id int) (domain.Comment, bool) {
	return r.col.Find(ctx, id)
}

func (r *CommentRepository) Add(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.UserName = resolveUserName(ctx, r.users, comment.UserID)
	comment.ContentTitle = r.contentTitle(ctx, comment.ContentID)
	comment.Date = r.opts.today()
	if comment.Status == "" {
		comment.Status = domain.CommentPending
	}

	return r.col.Append(ctx, func(id int) domain.Comment {
		comment.ID = id
		return comment
	})
}

// Update merges patch into the comment. Changing userId or contentId also
// refreshes the cached userName or contentTitle.
func (r *CommentRepository) Update(ctx context.Context, id int, patch domain.CommentPatch) (bool, error) {
	var userName, title string
	if patch.UserID != nil {
		userName = resolveUserName(ctx, r.users, *patch.UserID)
	}
	if patch.ContentID != nil {
		title = r.contentTitle(ctx, *patch.ContentID)
	}

	return r.col.Modify(ctx, id, func(c domain.Comment) domain.Comment {
		c = patch.Merge(c)
		if patch.UserID != nil {
			c.UserName = userName
		}
		if patch.ContentID != nil {
			c.ContentTitle = title
		}
		return c
	})
}

func (r *CommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.col.Remove(ctx, id)
}

func (r *CommentRepository) contentTitle(ctx context.Context, contentID int) string {
	if c, ok := r.content.Get(ctx, contentID); ok {
		return c.Title
	}
	return ""
}
