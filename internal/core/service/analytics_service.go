package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

const (
	defaultTopContent = 5
	newUserWindow     = 30 * 24 * time.Hour
)

type AnalyticsService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	comments ports.CommentRepository
	content  ports.ContentRepository
	now      func() time.Time
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)

func NewAnalyticsService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	comments ports.CommentRepository,
	content ports.ContentRepository,
	now func() time.Time,
) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{users: users, roles: roles, comments: comments, content: content, now: now}
}

func (s *AnalyticsService) Stats(ctx context.Context) ports.Stats {
	users := s.users.List(ctx)
	content := s.content.List(ctx)
	comments := s.comments.List(ctx)

	var st ports.Stats
	st.TotalUsers = len(users)
	cutoff := s.now().Add(-newUserWindow)
	for _, u := range users {
		if u.Status == domain.StatusActive {
			st.ActiveUsers++
		}
		if joined, ok := domain.ParseDate(u.Joined); ok && joined.After(cutoff) {
			st.NewUsers++
		}
	}

	for _, c := range content {
		st.TotalViews += c.Views
		st.TotalLikes += c.Likes
		if c.Views > st.TopViews {
			st.TopViews = c.Views
		}
	}
	st.AvgViews = roundDiv(st.TotalViews, len(content))

	st.TotalComments = len(comments)
	st.ApprovedComments = domain.CountComments(comments, domain.CommentApproved)
	st.PendingComments = domain.CountComments(comments, domain.CommentPending)
	st.SpamComments = domain.CountComments(comments, domain.CommentSpam)

	st.EngagementRate = domain.Percent(st.TotalLikes+st.TotalComments, st.TotalViews)
	st.AvgLikesPerUser = roundDiv(st.TotalLikes, st.TotalUsers)
	return st
}

// TopContent ranks content by views, highest first. limit <= 0 means 5.
func (s *AnalyticsService) TopContent(ctx context.Context, limit int) []ports.ContentPerformance {
	if limit <= 0 {
		limit = defaultTopContent
	}
	content := s.content.List(ctx)
	sort.SliceStable(content, func(i, j int) bool { return content[i].Views > content[j].Views })
	if len(content) > limit {
		content = content[:limit]
	}

	out := make([]ports.ContentPerformance, 0, len(content))
	for i, c := range content {
		out = append(out, ports.ContentPerformance{Content: c, Rank: i + 1, EngagementRate: c.EngagementRate()})
	}
	return out
}

func (s *AnalyticsService) Dashboard(ctx context.Context) ports.DashboardStats {
	users := s.users.List(ctx)
	d := ports.DashboardStats{TotalUsers: len(users), TotalRoles: len(s.roles.List(ctx))}
	for _, u := range users {
		if u.Status != domain.StatusActive {
			continue
		}
		d.Subscribers++
		if u.Role == domain.RoleContributor {
			d.Contributors++
		}
	}
	return d
}

// RoleUsage counts the users currently holding each role record. The stored
// UserCount is returned untouched alongside.
func (s *AnalyticsService) RoleUsage(ctx context.Context) []ports.RoleUsage {
	users := s.users.List(ctx)
	roles := s.roles.List(ctx)

	out := make([]ports.RoleUsage, 0, len(roles))
	for _, r := range roles {
		n := 0
		for _, u := range users {
			if r.Matches(u.Role) {
				n++
			}
		}
		out = append(out, ports.RoleUsage{Role: r, LiveCount: n})
	}
	return out
}

func roundDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return int(math.Round(float64(a) / float64(b)))
}
