package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
	"github.com/99minutos/cms-console/internal/pkg/metrics"
)

type ModerationService struct {
	users     ports.UserRepository
	blacklist ports.BlacklistRepository
	audit     ports.AuditRepository
	session   ports.SessionRepository
	logger    zerolog.Logger
}

var _ ports.ModerationService = (*ModerationService)(nil)

func NewModerationService(
	users ports.UserRepository,
	blacklist ports.BlacklistRepository,
	audit ports.AuditRepository,
	session ports.SessionRepository,
	logger zerolog.Logger,
) *ModerationService {
	return &ModerationService{
		users:     users,
		blacklist: blacklist,
		audit:     audit,
		session:   session,
		logger:    logger,
	}
}

// BanUser sets the user's status to banned and adds a blacklist entry unless
// one already names the user. The two writes are not atomic: if the second
// fails the user stays banned without an entry until ReconcileBans runs.
func (s *ModerationService) BanUser(ctx context.Context, userID int) (*ports.BanResult, error) {
	user, ok := s.users.Get(ctx, userID)
	if !ok {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "not_found").Inc()
		return nil, fmt.Errorf("ban user %d: %w", userID, domain.ErrUserNotFound)
	}

	banned := domain.StatusBanned
	updated, err := s.users.Update(ctx, userID, domain.UserPatch{Status: &banned})
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "error").Inc()
		return nil, fmt.Errorf("ban user %d: %w", userID, err)
	}
	if !updated {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "not_found").Inc()
		return nil, fmt.Errorf("ban user %d: %w", userID, domain.ErrUserNotFound)
	}
	user.Status = banned

	entry, created, err := s.ensureBlacklisted(ctx, user)
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "error").Inc()
		s.logger.Error().Err(err).Int("user_id", userID).Msg("user banned but blacklist entry not written")
		return nil, fmt.Errorf("blacklist user %d: %w", userID, err)
	}

	result := "ok"
	if !created {
		result = "already_blacklisted"
	}
	metrics.ModerationActionsTotal.WithLabelValues("ban", result).Inc()
	s.record(ctx, domain.AuditEntry{
		Action:   domain.AuditBanUser,
		UserID:   user.ID,
		UserName: user.Name,
		Reason:   entry.Reason,
	})
	s.logger.Info().Int("user_id", userID).Bool("entry_created", created).Msg("user banned")

	return &ports.BanResult{User: user, Entry: entry, Created: created}, nil
}

// Unblacklist removes the entry only. The user's status is left as is.
func (s *ModerationService) Unblacklist(ctx context.Context, entryID int) (bool, error) {
	entry, _ := s.blacklist.Get(ctx, entryID)

	removed, err := s.blacklist.Delete(ctx, entryID)
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("unblacklist", "error").Inc()
		return false, fmt.Errorf("unblacklist entry %d: %w", entryID, err)
	}
	if !removed {
		metrics.ModerationActionsTotal.WithLabelValues("unblacklist", "not_found").Inc()
		return false, nil
	}

	metrics.ModerationActionsTotal.WithLabelValues("unblacklist", "ok").Inc()
	s.record(ctx, domain.AuditEntry{
		Action:   domain.AuditUnblacklistUser,
		UserID:   entry.UserID,
		UserName: entry.UserName,
		Reason:   entry.Reason,
	})
	s.logger.Info().Int("entry_id", entryID).Int("user_id", entry.UserID).Msg("blacklist entry removed")
	return true, nil
}

// ReconcileBans adds the missing blacklist entry of every banned user.
func (s *ModerationService) ReconcileBans(ctx context.Context) (int, error) {
	created := 0
	for _, u := range s.users.List(ctx) {
		if !u.IsBanned() {
			continue
		}
		entry, isNew, err := s.ensureBlacklisted(ctx, u)
		if err != nil {
			metrics.ModerationActionsTotal.WithLabelValues("reconcile", "error").Inc()
			return created, fmt.Errorf("reconcile user %d: %w", u.ID, err)
		}
		if !isNew {
			continue
		}
		created++
		s.record(ctx, domain.AuditEntry{
			Action:   domain.AuditReconcileBan,
			UserID:   u.ID,
			UserName: u.Name,
			Reason:   entry.Reason,
		})
	}

	metrics.ModerationActionsTotal.WithLabelValues("reconcile", "ok").Inc()
	if created > 0 {
		s.logger.Warn().Int("created", created).Msg("banned users were missing from the blacklist")
	}
	return created, nil
}

func (s *ModerationService) ensureBlacklisted(ctx context.Context, u domain.User) (domain.BlacklistEntry, bool, error) {
	if existing, ok := s.blacklist.FindByUserID(ctx, u.ID); ok {
		return existing, false, nil
	}
	entry, err := s.blacklist.Add(ctx, domain.BlacklistEntry{UserID: u.ID, Reason: domain.BanReason})
	if err != nil {
		return domain.BlacklistEntry{}, false, err
	}
	return entry, true, nil
}

// record appends to the audit trail. Failures are logged and swallowed.
func (s *ModerationService) record(ctx context.Context, entry domain.AuditEntry) {
	if actor, ok := s.session.Load(ctx); ok {
		entry.Actor = actor.Username
	}
	if _, err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", string(entry.Action)).Msg("audit append failed")
	}
}
