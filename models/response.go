package models

import "time"

// Responses render storage records into the wire shape. Records carry their id
// under both "id" and "_id".

type recordIDs struct {
	ID         string    `json:"id"`
	LegacyID   string    `json:"_id"`
	UserID     string    `json:"user_id"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newRecordIDs(o Owned) recordIDs {
	id := o.ID.String()
	return recordIDs{
		ID:         id,
		LegacyID:   id,
		UserID:     o.UserID.String(),
		OrderIndex: o.OrderIndex,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

type UserResponse struct {
	ID          string     `json:"id"`
	LegacyID    string     `json:"_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        UserRole   `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		LegacyID:    u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

type ProfileResponse struct {
	UserResponse
	Title     string    `json:"title"`
	AboutMe   string    `json:"about_me"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	Phone     string    `json:"phone"`
	Website   string    `json:"website"`
	GitHub    string    `json:"github"`
	LinkedIn  string    `json:"linkedin"`
	Twitter   string    `json:"twitter"`
	AvatarURL string    `json:"avatar_url"`
	ResumeURL string    `json:"resume_url"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfileResponse(u *User) ProfileResponse {
	return ProfileResponse{
		UserResponse: NewUserResponse(u),
		Title:        u.Title,
		AboutMe:      u.AboutMe,
		Bio:          u.Bio,
		Location:     u.Location,
		Phone:        u.Phone,
		Website:      u.Website,
		GitHub:       u.GitHub,
		LinkedIn:     u.LinkedIn,
		Twitter:      u.Twitter,
		AvatarURL:    u.AvatarURL,
		ResumeURL:    u.ResumeURL,
		Status:       u.Status,
		UpdatedAt:    u.UpdatedAt,
	}
}

type EducationResponse struct {
	recordIDs
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `json:"is_current"`
	Grade        string     `json:"grade"`
	Description  string     `json:"description"`
	LogoURL      string     `json:"logo_url"`
}

func NewEducationResponse(e *Education) EducationResponse {
	return EducationResponse{
		recordIDs:    newRecordIDs(e.Owned),
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		Location:     e.Location,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		IsCurrent:    e.IsCurrent,
		Grade:        e.Grade,
		Description:  e.Description,
		LogoURL:      e.LogoURL,
	}
}

type CertificationResponse struct {
	recordIDs
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     time.Time  `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  string     `json:"credential_id"`
	CredentialURL string     `json:"credential_url"`
	ImageURL      string     `json:"image_url"`
	Description   string     `json:"description"`
}

func NewCertificationResponse(c *Certification) CertificationResponse {
	return CertificationResponse{
		recordIDs:     newRecordIDs(c.Owned),
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
		ImageURL:      c.ImageURL,
		Description:   c.Description,
	}
}

type TestimonialResponse struct {
	recordIDs
	Name         string            `json:"name"`
	Position     string            `json:"position"`
	Company      string            `json:"company"`
	Relationship string            `json:"relationship"`
	Content      string            `json:"content"`
	AvatarURL    string            `json:"avatar_url"`
	Rating       int               `json:"rating"`
	Status       TestimonialStatus `json:"status"`
	ApprovedAt   *time.Time        `json:"approved_at"`
	RejectedAt   *time.Time        `json:"rejected_at"`
}

func NewTestimonialResponse(t *Testimonial) TestimonialResponse {
	return TestimonialResponse{
		recordIDs:    newRecordIDs(t.Owned),
		Name:         t.Name,
		Position:     t.Position,
		Company:      t.Company,
		Relationship: t.Relationship,
		Content:      t.Content,
		AvatarURL:    t.AvatarURL,
		Rating:       t.Rating,
		Status:       t.Status,
		ApprovedAt:   t.ApprovedAt,
		RejectedAt:   t.RejectedAt,
	}
}

type ArticleResponse struct {
	recordIDs
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Kind          ArticleKind `json:"kind"`
	Summary       string      `json:"summary"`
	Content       string      `json:"content"`
	ContentHTML   string      `json:"content_html"`
	CoverImageURL string      `json:"cover_image_url"`
	ProjectURL    string      `json:"project_url"`
	RepoURL       string      `json:"repo_url"`
	Tags          []string    `json:"tags"`
	Published     bool        `json:"published"`
	PublishedAt   *time.Time  `json:"published_at"`
}

func NewArticleResponse(a *Article) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		recordIDs:     newRecordIDs(a.Owned),
		Title:         a.Title,
		Slug:          a.Slug,
		Kind:          a.Kind,
		Summary:       a.Summary,
		Content:       a.Content,
		ContentHTML:   a.ContentHTML,
		CoverImageURL: a.CoverImageURL,
		ProjectURL:    a.ProjectURL,
		RepoURL:       a.RepoURL,
		Tags:          tags,
		Published:     a.Published,
		PublishedAt:   a.PublishedAt,
	}
}

// Render maps records through fn, never returning nil.
func Render[T any, R any](records []T, fn func(*T) R) []R {
	out := make([]R, 0, len(records))
	for i := range records {
		out = append(out, fn(&records[i]))
	}
	return out
}
