package service

import (
	"context"
	"strings"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     []domain.User
	updateErr error
	writes    int
}

func (r *stubUserRepo) List(context.Context) []domain.User {
	return append([]domain.User(nil), r.users...)
}

func (r *stubUserRepo) Get(_ context.Context, id int) (domain.User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (domain.User, bool) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return domain.User{}, false
}

func (r *stubUserRepo) Add(_ context.Context, u domain.User) (domain.User, error) {
	u.ID = len(r.users) + 1
	r.users = append(r.users, u)
	r.writes++
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int, p domain.UserPatch) (bool, error) {
	if r.updateErr != nil {
		return false, r.updateErr
	}
	for i, u := range r.users {
		if u.ID == id {
			r.users[i] = p.Merge(u)
			r.writes++
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) (bool, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.writes++
			return true, nil
		}
	}
	return false, nil
}

type stubBlacklistRepo struct {
	entries []domain.BlacklistEntry
	addErr  error
}

func (r *stubBlacklistRepo) List(context.Context) []domain.BlacklistEntry {
	return append([]domain.BlacklistEntry(nil), r.entries...)
}

func (r *stubBlacklistRepo) Get(_ context.Context, id int) (domain.BlacklistEntry, bool) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.BlacklistEntry{}, false
}

func (r *stubBlacklistRepo) FindByUserID(_ context.Context, userID int) (domain.BlacklistEntry, bool) {
	for _, e := range r.entries {
		if e.UserID == userID {
			return e, true
		}
	}
	return domain.BlacklistEntry{}, false
}

func (r *stubBlacklistRepo) Add(_ context.Context, e domain.BlacklistEntry) (domain.BlacklistEntry, error) {
	if r.addErr != nil {
		return domain.BlacklistEntry{}, r.addErr
	}
	e.ID = len(r.entries) + 1
	e.Date = "2024-05-17"
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *stubBlacklistRepo) Update(context.Context, int, domain.BlacklistPatch) (bool, error) {
	return false, nil
}

func (r *stubBlacklistRepo) Delete(_ context.Context, id int) (bool, error) {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubAuditRepo struct {
	entries   []domain.AuditEntry
	appendErr error
}

func (r *stubAuditRepo) List(context.Context) []domain.AuditEntry { return r.entries }

func (r *stubAuditRepo) Append(_ context.Context, e domain.AuditEntry) (domain.AuditEntry, error) {
	if r.appendErr != nil {
		return domain.AuditEntry{}, r.appendErr
	}
	e.ID = len(r.entries) + 1
	r.entries = append(r.entries, e)
	return e, nil
}

type stubSessionRepo struct {
	current *domain.User
	saveErr error
}

func (r *stubSessionRepo) Load(context.Context) (*domain.User, bool) {
	if r.current == nil {
		return nil, false
	}
	u := *r.current
	return &u, true
}

func (r *stubSessionRepo) Save(_ context.Context, u domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.current = &u
	return nil
}

func (r *stubSessionRepo) Clear(context.Context) error {
	r.current = nil
	return nil
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Admin User", Username: "admin", Role: domain.RoleAdmin, Status: domain.StatusActive, Joined: "2023-01-15"},
		{ID: 2, Name: "Jane Editor", Username: "jane_editor", Role: domain.RoleEditor, Status: domain.StatusActive, Joined: "2023-02-20"},
		{ID: 5, Name: "Mike Banned", Username: "mike_banned", Role: domain.RoleViewer, Status: domain.StatusBanned, Joined: "2023-01-30"},
	}
}
