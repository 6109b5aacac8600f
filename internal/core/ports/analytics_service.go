package ports

import (
	"context"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// Stats is the descriptive summary shown on the analytics page.
type Stats struct {
	TotalUsers       int `json:"totalUsers"`
	ActiveUsers      int `json:"activeUsers"`
	NewUsers         int `json:"newUsers"`
	TotalViews       int `json:"totalViews"`
	AvgViews         int `json:"avgViews"`
	TopViews         int `json:"topViews"`
	TotalLikes       int `json:"totalLikes"`
	EngagementRate   int `json:"engagementRate"`
	AvgLikesPerUser  int `json:"avgLikesPerUser"`
	TotalComments    int `json:"totalComments"`
	ApprovedComments int `json:"approvedComments"`
	PendingComments  int `json:"pendingComments"`
	SpamComments     int `json:"spamComments"`
}

// ContentPerformance pairs a content item with its engagement rate.
type ContentPerformance struct {
	Content        domain.Content `json:"content"`
	Rank           int            `json:"rank"`
	EngagementRate int            `json:"engagementRate"`
}

// DashboardStats is the summary shown on the landing dashboard.
type DashboardStats struct {
	TotalUsers   int `json:"totalUsers"`
	Subscribers  int `json:"subscribers"`
	Contributors int `json:"contributors"`
	TotalRoles   int `json:"totalRoles"`
}

// RoleUsage pairs a role record with the number of users currently holding it.
type RoleUsage struct {
	Role      domain.Role `json:"role"`
	LiveCount int         `json:"liveCount"`
}

// AnalyticsService aggregates over the stored records. Nothing is persisted.
type AnalyticsService interface {
	Stats(ctx context.Context) Stats
	TopContent(ctx context.Context, limit int) []ContentPerformance
	Dashboard(ctx context.Context) DashboardStats
	RoleUsage(ctx context.Context) []RoleUsage
}
