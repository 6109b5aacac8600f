package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// BlacklistRepository is the CRUD façade over the blacklist collection.
// It does not enforce one entry per user; the ban workflow does.
type BlacklistRepository interface {
	List(ctx context.Context) []domain.BlacklistEntry
	Get(ctx context.Context, id int) (domain.BlacklistEntry, bool)
	FindByUserID(ctx context.Context, userID int) (domain.BlacklistEntry, bool)
	Add(ctx context.Context, entry domain.BlacklistEntry) (domain.BlacklistEntry, error)
	Update(ctx context.Context, id int, patch domain.BlacklistPatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ReportRepository is the CRUD façade over the reports collection.
type ReportRepository interface {
	List(ctx context.Context) []domain.Report
	Get(ctx context.Context, id int) (domain.Report, bool)
	Add(ctx context.Context, report domain.Report) (domain.Report, error)
	Update(ctx context.Context, id int, patch domain.ReportPatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// AuditRepository is the append-only moderation audit trail.
type AuditRepository interface {
	List(ctx context.Context) []domain.AuditEntry
	Append(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error)
}
