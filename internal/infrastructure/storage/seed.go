package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

// Seeder writes the default data set into a fresh store.
type Seeder struct {
	store ports.Store
	log   zerolog.Logger
}

var _ ports.DataInitializer = (*Seeder)(nil)

func NewSeeder(store ports.Store, log zerolog.Logger) *Seeder {
	return &Seeder{store: store, log: log}
}

// Initialize writes the defaults of every collection whose key is absent.
// A key holding any value, even an empty array or garbage, is left alone.
func (s *Seeder) Initialize(ctx context.Context) error {
	defaults := DefaultData()
	for _, name := range Seeded() {
		key := Key(name)
		_, err := s.store.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrKeyNotFound) {
			return fmt.Errorf("probe %s: %w", key, err)
		}

		raw, err := json.Marshal(defaults[name])
		if err != nil {
			return fmt.Errorf("encode defaults for %s: %w", name, err)
		}
		if err := s.store.Set(ctx, key, raw); err != nil {
			return fmt.Errorf("seed %s: %w", key, err)
		}
		s.log.Info().Str("collection", string(name)).Msg("seeded default records")
	}
	return nil
}

// Clear removes every collection key, the audit trail and the session marker.
func (s *Seeder) Clear(ctx context.Context) error {
	for _, key := range AllKeys() {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	s.log.Warn().Msg("all console data cleared")
	return nil
}

// DefaultData returns a fresh copy of the default records keyed by collection.
func DefaultData() map[Name]any {
	return map[Name]any{
		Users:     DefaultUsers(),
		Roles:     DefaultRoles(),
		Comments:  DefaultComments(),
		Blacklist: DefaultBlacklist(),
		Reports:   DefaultReports(),
		Content:   DefaultContent(),
	}
}

func DefaultUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Admin User", Username: "admin", Email: "admin@example.com", Role: domain.RoleAdmin, Status: domain.StatusActive, Joined: "2023-01-15"},
		{ID: 2, Name: "Jane Editor", Username: "jane_editor", Email: "jane@example.com", Role: domain.RoleEditor, Status: domain.StatusActive, Joined: "2023-02-20"},
		{ID: 3, Name: "John Viewer", Username: "john_viewer", Email: "john@example.com", Role: domain.RoleViewer, Status: domain.StatusActive, Joined: "2023-03-10"},
		{ID: 4, Name: "Sarah Contributor", Username: "sarah_contrib", Email: "sarah@example.com", Role: domain.RoleContributor, Status: domain.StatusActive, Joined: "2023-04-05"},
		{ID: 5, Name: "Mike Banned", Username: "mike_banned", Email: "mike@example.com", Role: domain.RoleViewer, Status: domain.StatusBanned, Joined: "2023-01-30"},
		{ID: 6, Name: "Alex Inactive", Username: "alex_inactive", Email: "alex@example.com", Role: domain.RoleContributor, Status: domain.StatusInactive, Joined: "2023-02-15"},
	}
}

func DefaultRoles() []domain.Role {
	return []domain.Role{
		{ID: 1, Name: "Administrator", Description: "Full system access", UserCount: 1, Permissions: []domain.Permission{domain.PermissionAll}},
		{ID: 2, Name: "Editor", Description: "Can create and edit content", UserCount: 1, Permissions: []domain.Permission{domain.PermissionCreate, domain.PermissionEdit, domain.PermissionDelete}},
		{ID: 3, Name: "Viewer", Description: "Read-only access", UserCount: 2, Permissions: []domain.Permission{domain.PermissionRead}},
		{ID: 4, Name: "Contributor", Description: "Can create content", UserCount: 2, Permissions: []domain.Permission{domain.PermissionCreate, domain.PermissionRead}},
	}
}

func DefaultComments() []domain.Comment {
	return []domain.Comment{
		{ID: 1, UserID: 2, UserName: "Jane Editor", ContentID: 1, ContentTitle: "Getting Started with RBAC", Text: "Great article! Very helpful for understanding RBAC systems.", Date: "2023-06-10", Status: domain.CommentApproved},
		{ID: 2, UserID: 3, UserName: "John Viewer", ContentID: 2, ContentTitle: "Advanced Dashboard Techniques", Text: "Could you elaborate more on the chart integration section?", Date: "2023-06-12", Status: domain.CommentPending},
		{ID: 3, UserID: 4, UserName: "Sarah Contributor", ContentID: 1, ContentTitle: "Getting Started with RBAC", Text: "Thanks for sharing these insights.", Date: "2023-06-08", Status: domain.CommentApproved},
		{ID: 4, UserID: 6, UserName: "Alex Inactive", ContentID: 3, ContentTitle: "Content Management Best Practices", Text: "SPAM: Check out my website for more tips!", Date: "2023-06-05", Status: domain.CommentSpam},
	}
}

func DefaultBlacklist() []domain.BlacklistEntry {
	return []domain.BlacklistEntry{
		{ID: 1, UserID: 5, UserName: "Mike Banned", Reason: "Repeated policy violations", Date: "2023-05-20"},
	}
}

func DefaultReports() []domain.Report {
	return []domain.Report{
		{ID: 1, ReportedUserID: 5, ReportedUserName: "Mike Banned", ReporterID: 2, ReporterName: "Jane Editor", Reason: "Inappropriate content", Date: "2023-05-18"},
		{ID: 2, ReportedUserID: 6, ReportedUserName: "Alex Inactive", ReporterID: 3, ReporterName: "John Viewer", Reason: "Spam comments", Date: "2023-06-01"},
	}
}

func DefaultContent() []domain.Content {
	return []domain.Content{
		{ID: 1, Title: "Getting Started with RBAC", Views: 3245, Likes: 142, Comments: 8, Subscribers: 120},
		{ID: 2, Title: "Advanced Dashboard Techniques", Views: 2876, Likes: 98, Comments: 12, Subscribers: 85},
		{ID: 3, Title: "Content Management Best Practices", Views: 1987, Likes: 76, Comments: 5, Subscribers: 64},
	}
}
