package services

import (
	"context"

	"portfolio-api/models"
	"portfolio-api/repositories"
)

var certificationRequired = []string{"Title", "Issuer", "IssueDate"}

type CertificationService interface {
	List(ctx context.Context, userID string) ([]models.Certification, error)
	Get(ctx context.Context, id string) (*models.Certification, error)
	Create(ctx context.Context, req models.CertificationRequest) (*models.Certification, error)
	Update(ctx context.Context, id string, req models.CertificationRequest) (*models.Certification, error)
	Delete(ctx context.Context, id string) error
}

type certificationService struct {
	repo      repositories.CertificationRepository
	users     repositories.UserRepository
	resolver  AdminResolver
	validator *Validator
}

func NewCertificationService(repo repositories.CertificationRepository, users repositories.UserRepository, resolver AdminResolver, validator *Validator) CertificationService {
	return &certificationService{repo: repo, users: users, resolver: resolver, validator: validator}
}

func (s *certificationService) List(ctx context.Context, userID string) ([]models.Certification, error) {
	owner, err := listOwner(ctx, s.resolver, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListByUser(ctx, owner)
	if err != nil {
		return nil, storeError(err, "certification")
	}
	return records, nil
}

func (s *certificationService) Get(ctx context.Context, id string) (*models.Certification, error) {
	recordID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, storeError(err, "certification")
	}
	return record, nil
}

func (s *certificationService) Create(ctx context.Context, req models.CertificationRequest) (*models.Certification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	owner, err := recordOwner(ctx, s.resolver, s.users, req.UserID)
	if err != nil {
		return nil, err
	}

	record := &models.Certification{}
	record.UserID = owner
	applyCertification(record, req)
	if err := validateCertification(record); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, storeError(err, "certification")
	}
	return record, nil
}

func (s *certificationService) Update(ctx context.Context, id string, req models.CertificationRequest) (*models.Certification, error) {
	if err := s.validator.StructExcept(req, certificationRequired...); err != nil {
		return nil, err
	}
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyCertification(record, req)
	if err := validateCertification(record); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, storeError(err, "certification")
	}
	return record, nil
}

func (s *certificationService) Delete(ctx context.Context, id string) error {
	recordID, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, recordID); err != nil {
		return storeError(err, "certification")
	}
	return nil
}

func applyCertification(c *models.Certification, req models.CertificationRequest) {
	setString(&c.Title, req.Title)
	setString(&c.Issuer, req.Issuer)
	setString(&c.CredentialID, req.CredentialID)
	setString(&c.CredentialURL, req.CredentialURL)
	setString(&c.ImageURL, req.ImageURL)
	setString(&c.Description, req.Description)
	setInt(&c.OrderIndex, req.OrderIndex)
	if req.IssueDate != nil && !req.IssueDate.IsZero() {
		c.IssueDate = req.IssueDate.Time
	}
	if req.ExpiryDate != nil {
		c.ExpiryDate = req.ExpiryDate.TimePtr()
	}
}

func validateCertification(c *models.Certification) error {
	values := map[string]string{
		"title":  c.Title,
		"issuer": c.Issuer,
	}
	if c.IssueDate.IsZero() {
		values["issue_date"] = ""
	}
	if err := requireFields(values); err != nil {
		return err
	}
	if c.ExpiryDate != nil && c.ExpiryDate.Before(c.IssueDate) {
		return models.ErrorValidation{Fields: map[string]string{"expiry_date": "expiry_date must not be before issue_date"}}
	}
	return nil
}
