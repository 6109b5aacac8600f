package repository

import (
	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/ports"
)

// Set bundles every repository over one store.
type Set struct {
	Users     *UserRepository
	Roles     *RoleRepository
	Comments  *CommentRepository
	Blacklist *BlacklistRepository
	Reports   *ReportRepository
	Content   *ContentRepository
	Audit     *AuditRepository
	Session   *SessionRepository
}

func NewSet(store ports.Store, log zerolog.Logger, opts ...Option) *Set {
	users := NewUserRepository(store, log, opts...)
	content := NewContentRepository(store, log)
	return &Set{
		Users:     users,
		Roles:     NewRoleRepository(store, log),
		Comments:  NewCommentRepository(store, users, content, log, opts...),
		Blacklist: NewBlacklistRepository(store, users, log, opts...),
		Reports:   NewReportRepository(store, users, log, opts...),
		Content:   content,
		Audit:     NewAuditRepository(store, log, opts...),
		Session:   NewSessionRepository(store, log),
	}
}
