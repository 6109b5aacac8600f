package domain

import "time"

// BanReason is recorded on blacklist entries created by the ban workflow.
const BanReason = "Banned from report review"

// BlacklistEntry records a user barred from the console. At most one entry
// per UserID is expected; only the ban workflow checks it.
type BlacklistEntry struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Reason   string `json:"reason"`
	Date     string `json:"date"`
}

// BlacklistPatch carries a partial blacklist update.
type BlacklistPatch struct {
	Reason *string `json:"reason,omitempty"`
}

// Merge returns e with every provided field of p applied over it.
func (p BlacklistPatch) Merge(e BlacklistEntry) BlacklistEntry {
	if p.Reason != nil {
		e.Reason = *p.Reason
	}
	return e
}

// Report is a complaint filed by one user against another.
type Report struct {
	ID               int    `json:"id"`
	ReportedUserID   int    `json:"reportedUserId"`
	ReportedUserName string `json:"reportedUserName"`
	ReporterID       int    `json:"reporterId"`
	ReporterName     string `json:"reporterName"`
	Reason           string `json:"reason"`
	Date             string `json:"date"`
}

// ReportPatch carries a partial report update.
type ReportPatch struct {
	Reason *string `json:"reason,omitempty"`
}

// Merge returns r with every provided field of p applied over it.
func (p ReportPatch) Merge(r Report) Report {
	if p.Reason != nil {
		r.Reason = *p.Reason
	}
	return r
}

// AuditAction names a moderation action recorded in the audit trail.
type AuditAction string

const (
	AuditBanUser         AuditAction = "ban_user"
	AuditUnblacklistUser AuditAction = "unblacklist_user"
	AuditReconcileBan    AuditAction = "reconcile_ban"
)

// AuditEntry is one line of the moderation audit trail.
type AuditEntry struct {
	ID       int         `json:"id"`
	Action   AuditAction `json:"action"`
	UserID   int         `json:"userId"`
	UserName string      `json:"userName"`
	Actor    string      `json:"actor,omitempty"`
	Reason   string      `json:"reason,omitempty"`
	At       time.Time   `json:"at"`
}
