package services

import (
	"context"

	"portfolio-api/models"
	"portfolio-api/repositories"

	"github.com/google/uuid"
)

type ProfileService interface {
	GetPublic(ctx context.Context, id string) (*models.User, error)
	GetOwn(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
}

type profileService struct {
	users     repositories.UserRepository
	resolver  AdminResolver
	validator *Validator
}

func NewProfileService(users repositories.UserRepository, resolver AdminResolver, validator *Validator) ProfileService {
	return &profileService{users: users, resolver: resolver, validator: validator}
}

// GetPublic accepts a concrete id or models.DynamicAdminID.
func (s *profileService) GetPublic(ctx context.Context, id string) (*models.User, error) {
	userID, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.GetOwn(ctx, userID)
}

func (s *profileService) GetOwn(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	user, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	setString(&user.Name, req.Name)
	setString(&user.Title, req.Title)
	setString(&user.Bio, req.Bio)
	setString(&user.Location, req.Location)
	setString(&user.Phone, req.Phone)
	setString(&user.Website, req.Website)
	setString(&user.GitHub, req.GitHub)
	setString(&user.LinkedIn, req.LinkedIn)
	setString(&user.Twitter, req.Twitter)
	setString(&user.AvatarURL, req.AvatarURL)
	setString(&user.ResumeURL, req.ResumeURL)
	setString(&user.Status, req.Status)
	// about_me is free text and is stored verbatim.
	if req.AboutMe != nil {
		user.AboutMe = *req.AboutMe
	}
	if err := requireFields(map[string]string{"name": user.Name}); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, storeError(err, "user")
	}
	return user, nil
}
