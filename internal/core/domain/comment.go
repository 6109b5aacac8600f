package domain

// UnknownUserName is shown wherever a user reference no longer resolves.
const UnknownUserName = "Unknown User"

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentApproved CommentStatus = "approved"
	CommentPending  CommentStatus = "pending"
	CommentSpam     CommentStatus = "spam"
)

// Valid reports whether s is one of the known comment statuses.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentApproved, CommentPending, CommentSpam:
		return true
	}
	return false
}

// Comment is a user comment on a content item. UserName and ContentTitle are
// display snapshots taken when the comment was created.
type Comment struct {
	ID           int           `json:"id"`
	UserID       int           `json:"userId"`
	UserName     string        `json:"userName"`
	ContentID    int           `json:"contentId"`
	ContentTitle string        `json:"contentTitle"`
	Text         string        `json:"text"`
	Date         string        `json:"date"`
	Status       CommentStatus `json:"status"`
}

// CommentPatch carries a partial comment update.
type CommentPatch struct {
	UserID    *int           `json:"userId,omitempty"`
	ContentID *int           `json:"contentId,omitempty"`
	Text      *string        `json:"text,omitempty"`
	Status    *CommentStatus `json:"status,omitempty"`
}

// Merge returns c with every provided field of p applied over it. Snapshots
// (UserName, ContentTitle) are left to the repository.
func (p CommentPatch) Merge(c Comment) Comment {
	if p.UserID != nil {
		c.UserID = *p.UserID
	}
	if p.ContentID != nil {
		c.ContentID = *p.ContentID
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}

// CountComments returns how many comments carry status.
func CountComments(comments []Comment, status CommentStatus) int {
	n := 0
	for _, c := range comments {
		if c.Status == status {
			n++
		}
	}
	return n
}
