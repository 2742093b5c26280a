package services

import (
	"context"

	"portfolio-api/models"
	"portfolio-api/repositories"
)

var educationRequired = []string{"Institution", "Degree", "StartDate"}

type EducationService interface {
	List(ctx context.Context, userID string) ([]models.Education, error)
	Get(ctx context.Context, id string) (*models.Education, error)
	Create(ctx context.Context, req models.EducationRequest) (*models.Education, error)
	Update(ctx context.Context, id string, req models.EducationRequest) (*models.Education, error)
	Delete(ctx context.Context, id string) error
}

type educationService struct {
	repo      repositories.EducationRepository
	users     repositories.UserRepository
	resolver  AdminResolver
	validator *Validator
}

func NewEducationService(repo repositories.EducationRepository, users repositories.UserRepository, resolver AdminResolver, validator *Validator) EducationService {
	return &educationService{repo: repo, users: users, resolver: resolver, validator: validator}
}

func (s *educationService) List(ctx context.Context, userID string) ([]models.Education, error) {
	owner, err := listOwner(ctx, s.resolver, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListByUser(ctx, owner)
	if err != nil {
		return nil, storeError(err, "education")
	}
	return records, nil
}

func (s *educationService) Get(ctx context.Context, id string) (*models.Education, error) {
	recordID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, storeError(err, "education")
	}
	return record, nil
}

func (s *educationService) Create(ctx context.Context, req models.EducationRequest) (*models.Education, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	owner, err := recordOwner(ctx, s.resolver, s.users, req.UserID)
	if err != nil {
		return nil, err
	}

	record := &models.Education{}
	record.UserID = owner
	applyEducation(record, req)
	if err := validateEducation(record); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, storeError(err, "education")
	}
	return record, nil
}

func (s *educationService) Update(ctx context.Context, id string, req models.EducationRequest) (*models.Education, error) {
	if err := s.validator.StructExcept(req, educationRequired...); err != nil {
		return nil, err
	}
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyEducation(record, req)
	if err := validateEducation(record); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, storeError(err, "education")
	}
	return record, nil
}

func (s *educationService) Delete(ctx context.Context, id string) error {
	recordID, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, recordID); err != nil {
		return storeError(err, "education")
	}
	return nil
}

func applyEducation(e *models.Education, req models.EducationRequest) {
	setString(&e.Institution, req.Institution)
	setString(&e.Degree, req.Degree)
	setString(&e.FieldOfStudy, req.FieldOfStudy)
	setString(&e.Location, req.Location)
	setString(&e.Grade, req.Grade)
	setString(&e.Description, req.Description)
	setString(&e.LogoURL, req.LogoURL)
	setBool(&e.IsCurrent, req.IsCurrent)
	setInt(&e.OrderIndex, req.OrderIndex)
	if req.StartDate != nil && !req.StartDate.IsZero() {
		e.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		e.EndDate = req.EndDate.TimePtr()
	}
	if e.IsCurrent {
		e.EndDate = nil
	}
}

func validateEducation(e *models.Education) error {
	values := map[string]string{
		"institution": e.Institution,
		"degree":      e.Degree,
	}
	if e.StartDate.IsZero() {
		values["start_date"] = ""
	}
	if err := requireFields(values); err != nil {
		return err
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return models.ErrorValidation{Fields: map[string]string{"end_date": "end_date must not be before start_date"}}
	}
	return nil
}
