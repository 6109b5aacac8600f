package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

// ── Blacklist ─────────────────────────────────────────────────────────────────

type BlacklistRepository struct {
	col   *storage.Collection[domain.BlacklistEntry]
	users ports.UserRepository
	opts  options
}

var _ ports.BlacklistRepository = (*BlacklistRepository)(nil)

func NewBlacklistRepository(store ports.Store, users ports.UserRepository, log zerolog.Logger, opts ...Option) *BlacklistRepository {
	return &BlacklistRepository{
		col:   storage.NewCollection(store, storage.Blacklist, func(e domain.BlacklistEntry) int { return e.ID }, log),
		users: users,
		opts:  buildOptions(opts),
	}
}

func (r *BlacklistRepository) List(ctx context.Context) []domain.BlacklistEntry {
	return r.col.Load(ctx)
}

func (r *BlacklistRepository) Get(ctx context.Context, id int) (domain.BlacklistEntry, bool) {
	return r.col.Find(ctx, id)
}

// FindByUserID returns the first entry naming userID.
func (r *BlacklistRepository) FindByUserID(ctx context.Context, userID int) (domain.BlacklistEntry, bool) {
	for _, e := range r.col.Load(ctx) {
		if e.UserID == userID {
			return e, true
		}
	}
	return domain.BlacklistEntry{}, false
}

func (r *BlacklistRepository) Add(ctx context.Context, entry domain.BlacklistEntry) (domain.BlacklistEntry, error) {
	entry.UserName = resolveUserName(ctx, r.users, entry.UserID)
	entry.Date = r.opts.today()

	return r.col.Append(ctx, func(id int) domain.BlacklistEntry {
		entry.ID = id
		return entry
	})
}

func (r *BlacklistRepository) Update(ctx context.Context, id int, patch domain.BlacklistPatch) (bool, error) {
	return r.col.Modify(ctx, id, patch.Merge)
}

func (r *BlacklistRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.col.Remove(ctx, id)
}

// ── Reports ───────────────────────────────────────────────────────────────────

type ReportRepository struct {
	col   *storage.Collection[domain.Report]
	users ports.UserRepository
	opts  options
}

var _ ports.ReportRepository = (*ReportRepository)(nil)

func NewReportRepository(store ports.Store, users ports.UserRepository, log zerolog.Logger, opts ...Option) *ReportRepository {
	return &ReportRepository{
		col:   storage.NewCollection(store, storage.Reports, func(r domain.Report) int { return r.ID }, log),
		users: users,
		opts:  buildOptions(opts),
	}
}

func (r *ReportRepository) List(ctx context.Context) []domain.Report {
	return r.col.Load(ctx)
}

func (r *ReportRepository) Get(ctx context.Context, id int) (domain.Report, bool) {
	return r.col.Find(ctx, id)
}

func (r *ReportRepository) Add(ctx context.Context, report domain.Report) (domain.Report, error) {
	report.ReportedUserName = resolveUserName(ctx, r.users, report.ReportedUserID)
	report.ReporterName = resolveUserName(ctx, r.users, report.ReporterID)
	report.Date = r.opts.today()

	return r.col.Append(ctx, func(id int) domain.Report {
		report.ID = id
		return report
	})
}

func (r *ReportRepository) Update(ctx context.Context, id int, patch domain.ReportPatch) (bool, error) {
	return r.col.Modify(ctx, id, patch.Merge)
}

func (r *ReportRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.col.Remove(ctx, id)
}

// ── Audit ─────────────────────────────────────────────────────────────────────

type AuditRepository struct {
	col  *storage.Collection[domain.AuditEntry]
	opts options
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(store ports.Store, log zerolog.Logger, opts ...Option) *AuditRepository {
	return &AuditRepository{
		col:  storage.NewCollection(store, storage.Audit, func(e domain.AuditEntry) int { return e.ID }, log),
		opts: buildOptions(opts),
	}
}

// List returns the trail newest first.
func (r *AuditRepository) List(ctx context.Context) []domain.AuditEntry {
	entries := r.col.Load(ctx)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// Append stamps At when it is unset.
func (r *AuditRepository) Append(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	if entry.At.IsZero() {
		entry.At = r.opts.now().UTC().Truncate(time.Second)
	}
	return r.col.Append(ctx, func(id int) domain.AuditEntry {
		entry.ID = id
		return entry
	})
}
