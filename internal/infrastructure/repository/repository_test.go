package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/infrastructure/db/memory"
	"github.com/99minutos/cms-console/internal/infrastructure/storage"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func seededSet(t *testing.T) (*Set, *memory.Store) {
	t.Helper()
	s := memory.NewStore()
	require.NoError(t, storage.NewSeeder(s, zerolog.Nop()).Initialize(context.Background()))
	return NewSet(s, zerolog.Nop(), WithClock(func() time.Time { return fixedNow })), s
}

func TestUserRepository_AddAssignsNextIDAndJoined(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	u, err := set.Users.Add(ctx, domain.User{ID: 42, Name: "New Person", Username: "new", Role: domain.RoleViewer})
	require.NoError(t, err)

	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "2024-05-17", u.Joined)
	assert.Equal(t, domain.StatusActive, u.Status)
	assert.Len(t, set.Users.List(ctx), 7)
}

func TestUserRepository_AddOnEmptyStartsAtOne(t *testing.T) {
	users := NewUserRepository(memory.NewStore(), zerolog.Nop())

	u, err := users.Add(context.Background(), domain.User{Name: "First", Status: domain.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, domain.StatusInactive, u.Status)
}

func TestUserRepository_UpdateMergesAndMisses(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	email := "jane@cms.example"
	ok, err := set.Users.Update(ctx, 2, domain.UserPatch{Email: &email})
	require.NoError(t, err)
	assert.True(t, ok)

	jane, found := set.Users.Get(ctx, 2)
	require.True(t, found)
	assert.Equal(t, email, jane.Email)
	assert.Equal(t, "Jane Editor", jane.Name)
	assert.Equal(t, domain.RoleEditor, jane.Role)
	assert.Equal(t, "2023-02-20", jane.Joined)

	before := set.Users.List(ctx)
	ok, err = set.Users.Update(ctx, 99, domain.UserPatch{Email: &email})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, set.Users.List(ctx))
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	ok, err := set.Users.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	_, found := set.Users.Get(ctx, 3)
	assert.False(t, found)

	ok, err = set.Users.Delete(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, set.Users.List(ctx), 5)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	set, _ := seededSet(t)

	u, ok := set.Users.FindByUsername(context.Background(), "JANE_EDITOR")
	require.True(t, ok)
	assert.Equal(t, 2, u.ID)

	_, ok = set.Users.FindByUsername(context.Background(), "ghost")
	assert.False(t, ok)
}

func TestCommentRepository_AddResolvesNames(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	c, err := set.Comments.Add(ctx, domain.Comment{UserID: 2, ContentID: 1, Text: "Nice"})
	require.NoError(t, err)
	assert.Equal(t, 5, c.ID)
	assert.Equal(t, "Jane Editor", c.UserName)
	assert.Equal(t, "Getting Started with RBAC", c.ContentTitle)
	assert.Equal(t, "2024-05-17", c.Date)
	assert.Equal(t, domain.CommentPending, c.Status)

	orphan, err := set.Comments.Add(ctx, domain.Comment{UserID: 999, ContentID: 999, Text: "?", Status: domain.CommentSpam})
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownUserName, orphan.UserName)
	assert.Empty(t, orphan.ContentTitle)
	assert.Equal(t, domain.CommentSpam, orphan.Status)
}

func TestCommentRepository_UpdateKeepsSnapshots(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	approved := domain.CommentApproved
	ok, err := set.Comments.Update(ctx, 2, domain.CommentPatch{Status: &approved})
	require.NoError(t, err)
	require.True(t, ok)

	c, _ := set.Comments.Get(ctx, 2)
	assert.Equal(t, domain.CommentApproved, c.Status)
	assert.Equal(t, "John Viewer", c.UserName)
	assert.Equal(t, "Could you elaborate more on the chart integration section?", c.Text)
}

func TestCommentRepository_UpdateRefreshesNamesOnReassign(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	user, content := 4, 3
	ok, err := set.Comments.Update(ctx, 1, domain.CommentPatch{UserID: &user, ContentID: &content})
	require.NoError(t, err)
	require.True(t, ok)

	c, _ := set.Comments.Get(ctx, 1)
	assert.Equal(t, "Sarah Contributor", c.UserName)
	assert.Equal(t, "Content Management Best Practices", c.ContentTitle)

	missing := 42
	ok, err = set.Comments.Update(ctx, 1, domain.CommentPatch{UserID: &missing})
	require.NoError(t, err)
	require.True(t, ok)
	c, _ = set.Comments.Get(ctx, 1)
	assert.Equal(t, domain.UnknownUserName, c.UserName)
	assert.Equal(t, "Content Management Best Practices", c.ContentTitle)
}

func TestRoleRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	r, err := set.Roles.Add(ctx, domain.Role{ID: 1, Name: "Auditor"})
	require.NoError(t, err)
	assert.Equal(t, 5, r.ID)
	assert.NotNil(t, r.Permissions)

	ok, err := set.Roles.Update(ctx, 5, domain.RolePatch{Permissions: []domain.Permission{domain.PermissionRead}})
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := set.Roles.Get(ctx, 5)
	assert.Equal(t, "Auditor", got.Name)
	assert.True(t, got.HasPermission(domain.PermissionRead))

	ok, err = set.Roles.Delete(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, set.Roles.List(ctx), 4)
}

func TestContentRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	c, err := set.Content.Add(ctx, domain.Content{Title: "Fresh", Views: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, c.ID)

	views := 11
	ok, err := set.Content.Update(ctx, 4, domain.ContentPatch{Views: &views})
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := set.Content.Get(ctx, 4)
	assert.Equal(t, "Fresh", got.Title)
	assert.Equal(t, 11, got.Views)

	ok, err = set.Content.Delete(ctx, 40)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlacklistRepository_AddAndFind(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	e, err := set.Blacklist.Add(ctx, domain.BlacklistEntry{UserID: 6, Reason: "spam"})
	require.NoError(t, err)
	assert.Equal(t, 2, e.ID)
	assert.Equal(t, "Alex Inactive", e.UserName)
	assert.Equal(t, "2024-05-17", e.Date)

	found, ok := set.Blacklist.FindByUserID(ctx, 5)
	require.True(t, ok)
	assert.Equal(t, "Repeated policy violations", found.Reason)

	_, ok = set.Blacklist.FindByUserID(ctx, 1)
	assert.False(t, ok)
}

func TestReportRepository_AddResolvesBothNames(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	r, err := set.Reports.Add(ctx, domain.Report{ReportedUserID: 4, ReporterID: 77, Reason: "rude"})
	require.NoError(t, err)
	assert.Equal(t, 3, r.ID)
	assert.Equal(t, "Sarah Contributor", r.ReportedUserName)
	assert.Equal(t, domain.UnknownUserName, r.ReporterName)

	reason := "very rude"
	ok, err := set.Reports.Update(ctx, 3, domain.ReportPatch{Reason: &reason})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = set.Reports.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, set.Reports.List(ctx), 2)
}

func TestAuditRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	set, _ := seededSet(t)

	_, err := set.Audit.Append(ctx, domain.AuditEntry{Action: domain.AuditBanUser, UserID: 2})
	require.NoError(t, err)
	second, err := set.Audit.Append(ctx, domain.AuditEntry{Action: domain.AuditUnblacklistUser, UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, fixedNow, second.At)

	entries := set.Audit.List(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditUnblacklistUser, entries[0].Action)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	set, s := seededSet(t)

	_, ok := set.Session.Load(ctx)
	assert.False(t, ok)

	admin, _ := set.Users.Get(ctx, 1)
	require.NoError(t, set.Session.Save(ctx, admin))
	got, ok := set.Session.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, admin, *got)

	require.NoError(t, set.Session.Clear(ctx))
	_, ok = set.Session.Load(ctx)
	assert.False(t, ok)

	t.Run("null and corrupt markers read as absent", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, storage.SessionKey, []byte("null")))
		_, ok := set.Session.Load(ctx)
		assert.False(t, ok)

		require.NoError(t, s.Set(ctx, storage.SessionKey, []byte("{broken")))
		_, ok = set.Session.Load(ctx)
		assert.False(t, ok)
	})
}

func TestRepositories_CorruptCollectionReadsEmpty(t *testing.T) {
	ctx := context.Background()
	set, s := seededSet(t)
	require.NoError(t, s.Set(ctx, storage.Key(storage.Users), []byte("][")))

	assert.Empty(t, set.Users.List(ctx))

	u, err := set.Users.Add(ctx, domain.User{Name: "Recovered"})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
}
