package handler

import "github.com/99minutos/cms-console/internal/core/domain"

// --- Session ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
}

// --- Users ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=admin editor viewer contributor"`
	Status   string `json:"status"   validate:"omitempty,oneof=active inactive banned"`
	Bio      string `json:"bio"      validate:"max=500"`
}

func (r createUserRequest) toDomain() domain.User {
	return domain.User{
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Role:     domain.UserRole(r.Role),
		Status:   domain.UserStatus(r.Status),
		Bio:      r.Bio,
	}
}

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin editor viewer contributor"`
	Status   *string `json:"status"   validate:"omitempty,oneof=active inactive banned"`
	Bio      *string `json:"bio"      validate:"omitempty,max=500"`
}

func (r updateUserRequest) toPatch() domain.UserPatch {
	p := domain.UserPatch{Name: r.Name, Username: r.Username, Email: r.Email, Bio: r.Bio}
	if r.Role != nil {
		role := domain.UserRole(*r.Role)
		p.Role = &role
	}
	if r.Status != nil {
		status := domain.UserStatus(*r.Status)
		p.Status = &status
	}
	return p
}

// --- Roles ---

type createRoleRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	UserCount   int      `json:"userCount"   validate:"min=0"`
	Permissions []string `json:"permissions" validate:"dive,oneof=all create read edit delete"`
}

func (r createRoleRequest) toDomain() domain.Role {
	return domain.Role{
		Name:        r.Name,
		Description: r.Description,
		UserCount:   r.UserCount,
		Permissions: toPermissions(r.Permissions),
	}
}

type updateRoleRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	UserCount   *int     `json:"userCount"   validate:"omitempty,min=0"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,oneof=all create read edit delete"`
}

func (r updateRoleRequest) toPatch() domain.RolePatch {
	return domain.RolePatch{
		Name:        r.Name,
		Description: r.Description,
		UserCount:   r.UserCount,
		Permissions: toPermissions(r.Permissions),
	}
}

// toPermissions keeps nil as nil so a patch without permissions leaves them alone.
func toPermissions(in []string) []domain.Permission {
	if in == nil {
		return nil
	}
	out := make([]domain.Permission, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Permission(p))
	}
	return out
}

// --- Comments ---

type createCommentRequest struct {
	UserID    int    `json:"userId"    validate:"required,gt=0"`
	ContentID int    `json:"contentId" validate:"required,gt=0"`
	Text      string `json:"text"      validate:"required"`
	Status    string `json:"status"    validate:"omitempty,oneof=approved pending spam"`
}

func (r createCommentRequest) toDomain() domain.Comment {
	return domain.Comment{
		UserID:    r.UserID,
		ContentID: r.ContentID,
		Text:      r.Text,
		Status:    domain.CommentStatus(r.Status),
	}
}

type updateCommentRequest struct {
	UserID    *int    `json:"userId"    validate:"omitempty,gt=0"`
	ContentID *int    `json:"contentId" validate:"omitempty,gt=0"`
	Text      *string `json:"text"      validate:"omitempty,min=1"`
	Status    *string `json:"status"    validate:"omitempty,oneof=approved pending spam"`
}

func (r updateCommentRequest) toPatch() domain.CommentPatch {
	p := domain.CommentPatch{UserID: r.UserID, ContentID: r.ContentID, Text: r.Text}
	if r.Status != nil {
		s := domain.CommentStatus(*r.Status)
		p.Status = &s
	}
	return p
}

// --- Moderation ---

type createBlacklistRequest struct {
	UserID int    `json:"userId" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required"`
}

type createReportRequest struct {
	ReportedUserID int    `json:"reportedUserId" validate:"required,gt=0"`
	ReporterID     int    `json:"reporterId"     validate:"required,gt=0"`
	Reason         string `json:"reason"         validate:"required"`
}

type banResponse struct {
	User    domain.User           `json:"user"`
	Entry   domain.BlacklistEntry `json:"entry"`
	Created bool                  `json:"created"`
}

// --- Content ---

type createContentRequest struct {
	Title       string `json:"title"       validate:"required"`
	Views       int    `json:"views"       validate:"min=0"`
	Likes       int    `json:"likes"       validate:"min=0"`
	Comments    int    `json:"comments"    validate:"min=0"`
	Subscribers int    `json:"subscribers" validate:"min=0"`
}

func (r createContentRequest) toDomain() domain.Content {
	return domain.Content{
		Title:       r.Title,
		Views:       r.Views,
		Likes:       r.Likes,
		Comments:    r.Comments,
		Subscribers: r.Subscribers,
	}
}

type updateContentRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Views       *int    `json:"views"       validate:"omitempty,min=0"`
	Likes       *int    `json:"likes"       validate:"omitempty,min=0"`
	Comments    *int    `json:"comments"    validate:"omitempty,min=0"`
	Subscribers *int    `json:"subscribers" validate:"omitempty,min=0"`
}

func (r updateContentRequest) toPatch() domain.ContentPatch {
	return domain.ContentPatch{
		Title:       r.Title,
		Views:       r.Views,
		Likes:       r.Likes,
		Comments:    r.Comments,
		Subscribers: r.Subscribers,
	}
}

// --- Profile ---

type profileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"     validate:"required,email"`
	Bio       string `json:"bio"       validate:"max=500"`
}
