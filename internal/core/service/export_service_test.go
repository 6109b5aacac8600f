package service

import (
	"context"
	"testing"
	"time"
)

func TestExport_All(t *testing.T) {
	set := seededRepos(t)
	svc := NewExportService(set.Users, set.Roles, set.Comments, set.Blacklist, set.Reports, set.Content, nil)

	out := svc.All(context.Background())
	if len(out.Users) != 6 || len(out.Roles) != 4 || len(out.Comments) != 4 {
		t.Fatalf("unexpected users/roles/comments: %d/%d/%d", len(out.Users), len(out.Roles), len(out.Comments))
	}
	if len(out.Blacklist) != 1 || len(out.Reports) != 2 || len(out.Content) != 3 {
		t.Fatalf("unexpected blacklist/reports/content: %d/%d/%d", len(out.Blacklist), len(out.Reports), len(out.Content))
	}
}

func TestExport_Analytics(t *testing.T) {
	set := seededRepos(t)
	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	svc := NewExportService(set.Users, set.Roles, set.Comments, set.Blacklist, set.Reports, set.Content, func() time.Time { return now })

	out := svc.Analytics(context.Background())
	if !out.Timestamp.Equal(now) {
		t.Fatalf("expected timestamp %v, got %v", now, out.Timestamp)
	}
	s := out.Stats
	if s.TotalUsers != 6 || s.TotalViews != 8108 || s.TotalLikes != 316 || s.TotalComments != 25 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if len(out.Users) != 6 {
		t.Fatalf("expected 6 user summaries, got %d", len(out.Users))
	}
	if out.Users[0].Name != "Admin User" || out.Users[0].Joined != "2023-01-15" {
		t.Fatalf("unexpected first user %+v", out.Users[0])
	}
}
