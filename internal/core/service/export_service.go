package service

import (
	"context"
	"time"

	"github.com/99minutos/cms-console/internal/core/ports"
)

type ExportService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	comments  ports.CommentRepository
	blacklist ports.BlacklistRepository
	reports   ports.ReportRepository
	content   ports.ContentRepository
	now       func() time.Time
}

var _ ports.ExportService = (*ExportService)(nil)

func NewExportService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	comments ports.CommentRepository,
	blacklist ports.BlacklistRepository,
	reports ports.ReportRepository,
	content ports.ContentRepository,
	now func() time.Time,
) *ExportService {
	if now == nil {
		now = time.Now
	}
	return &ExportService{
		users:     users,
		roles:     roles,
		comments:  comments,
		blacklist: blacklist,
		reports:   reports,
		content:   content,
		now:       now,
	}
}

func (s *ExportService) All(ctx context.Context) ports.DataExport {
	return ports.DataExport{
		Users:     s.users.List(ctx),
		Roles:     s.roles.List(ctx),
		Comments:  s.comments.List(ctx),
		Blacklist: s.blacklist.List(ctx),
		Reports:   s.reports.List(ctx),
		Content:   s.content.List(ctx),
	}
}

// Analytics exports headline totals. TotalComments sums the stored per-content
// counters, not comment records.
func (s *ExportService) Analytics(ctx context.Context) ports.AnalyticsExport {
	users := s.users.List(ctx)
	content := s.content.List(ctx)

	summary := ports.AnalyticsSummary{TotalUsers: len(users)}
	for _, c := range content {
		summary.TotalViews += c.Views
		summary.TotalLikes += c.Likes
		summary.TotalComments += c.Comments
	}

	reduced := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		reduced = append(reduced, ports.UserSummary{Name: u.Name, Role: u.Role, Status: u.Status, Joined: u.Joined})
	}

	return ports.AnalyticsExport{
		Timestamp: s.now().UTC(),
		Stats:     summary,
		Content:   content,
		Users:     reduced,
	}
}
