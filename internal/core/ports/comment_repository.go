package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// CommentRepository is the CRUD façade over the comments collection.
type CommentRepository interface {
	List(ctx context.Context) []domain.Comment
	Get(ctx context.Context, id int) (domain.Comment, bool)
	// Add resolves UserName from the users collection ("Unknown User" when
	// missing) and ContentTitle from the content collection, then stamps the date.
	Add(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	Update(ctx context.Context, id int, patch domain.CommentPatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
