package storage

// Name identifies a logical collection.
type Name string

const (
	Users     Name = "users"
	Roles     Name = "roles"
	Comments  Name = "comments"
	Blacklist Name = "blacklist"
	Reports   Name = "reports"
	Content   Name = "content"
	Audit     Name = "audit"
)

// SessionKey holds the current-session marker.
const SessionKey = "cms_current_user"

var keys = map[Name]string{
	Users:     "cms_rbac_users",
	Roles:     "cms_rbac_roles",
	Comments:  "cms_rbac_comments",
	Blacklist: "cms_rbac_blacklist",
	Reports:   "cms_rbac_reports",
	Content:   "cms_content_data",
	Audit:     "cms_rbac_audit",
}

// Key returns the fixed store key of a collection.
func Key(n Name) string {
	return keys[n]
}

// Seeded lists the collections that receive default records, in seeding order.
func Seeded() []Name {
	return []Name{Users, Roles, Comments, Blacklist, Reports, Content}
}

// AllKeys returns every key the console writes, including the session marker.
func AllKeys() []string {
	out := make([]string, 0, len(keys)+1)
	for _, n := range append(Seeded(), Audit) {
		out = append(out, keys[n])
	}
	return append(out, SessionKey)
}
