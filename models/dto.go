package models

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Title     *string `json:"title"`
	AboutMe   *string `json:"about_me"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Phone     *string `json:"phone"`
	Website   *string `json:"website"`
	GitHub    *string `json:"github"`
	LinkedIn  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	AvatarURL *string `json:"avatar_url"`
	ResumeURL *string `json:"resume_url"`
	Status    *string `json:"status"`
}

type EducationRequest struct {
	UserID       string  `json:"user_id"`
	Institution  *string `json:"institution" validate:"required,min=1"`
	Degree       *string `json:"degree" validate:"required,min=1"`
	FieldOfStudy *string `json:"field_of_study"`
	Location     *string `json:"location"`
	StartDate    *Date   `json:"start_date" validate:"required"`
	EndDate      *Date   `json:"end_date"`
	IsCurrent    *bool   `json:"is_current"`
	Grade        *string `json:"grade"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
	OrderIndex   *int    `json:"order_index"`
}

type CertificationRequest struct {
	UserID        string  `json:"user_id"`
	Title         *string `json:"title" validate:"required,min=1"`
	Issuer        *string `json:"issuer" validate:"required,min=1"`
	IssueDate     *Date   `json:"issue_date" validate:"required"`
	ExpiryDate    *Date   `json:"expiry_date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
	ImageURL      *string `json:"image_url"`
	Description   *string `json:"description"`
	OrderIndex    *int    `json:"order_index"`
}

type TestimonialRequest struct {
	UserID       string  `json:"user_id"`
	Name         *string `json:"name" validate:"required,min=1"`
	Content      *string `json:"content" validate:"required,min=1"`
	Position     *string `json:"position"`
	Company      *string `json:"company"`
	Relationship *string `json:"relationship"`
	AvatarURL    *string `json:"avatar_url"`
	Rating       *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	OrderIndex   *int    `json:"order_index"`
}

type ArticleRequest struct {
	UserID        string   `json:"user_id"`
	Title         *string  `json:"title" validate:"required,min=1,max=200"`
	Slug          *string  `json:"slug" validate:"omitempty,max=200"`
	Kind          *string  `json:"kind" validate:"omitempty,oneof=article project"`
	Summary       *string  `json:"summary"`
	Content       *string  `json:"content"`
	CoverImageURL *string  `json:"cover_image_url"`
	ProjectURL    *string  `json:"project_url"`
	RepoURL       *string  `json:"repo_url"`
	Tags          []string `json:"tags" validate:"omitempty,dive,max=50"`
	Published     *bool    `json:"published"`
	OrderIndex    *int     `json:"order_index"`
}

// ListParams carries the query string shared by the list endpoints.
type ListParams struct {
	UserID string `form:"userId"`
	Status string `form:"status"`
	Kind   string `form:"kind"`
}
