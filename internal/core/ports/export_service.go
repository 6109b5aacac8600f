package ports

import (
	"context"
	"time"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// DataExport is a snapshot of all six collections.
type DataExport struct {
	Users     []domain.User           `json:"users"`
	Roles     []domain.Role           `json:"roles"`
	Comments  []domain.Comment        `json:"comments"`
	Blacklist []domain.BlacklistEntry `json:"blacklist"`
	Reports   []domain.Report         `json:"reports"`
	Content   []domain.Content        `json:"content"`
}

// AnalyticsSummary holds the headline counters of an analytics export.
type AnalyticsSummary struct {
	TotalUsers    int `json:"totalUsers"`
	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// UserSummary is the reduced user projection included in analytics exports.
type UserSummary struct {
	Name   string            `json:"name"`
	Role   domain.UserRole   `json:"role"`
	Status domain.UserStatus `json:"status"`
	Joined string            `json:"joined"`
}

// AnalyticsExport is the narrower analytics dump.
type AnalyticsExport struct {
	Timestamp time.Time        `json:"timestamp"`
	Stats     AnalyticsSummary `json:"stats"`
	Content   []domain.Content `json:"content"`
	Users     []UserSummary    `json:"users"`
}

// ExportService produces one-way snapshot exports. There is no import path.
type ExportService interface {
	All(ctx context.Context) DataExport
	Analytics(ctx context.Context) AnalyticsExport
}
