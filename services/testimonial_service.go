package services

import (
	"context"
	"time"

	"portfolio-api/models"
	"portfolio-api/repositories"

	"github.com/sirupsen/logrus"
)

var testimonialRequired = []string{"Name", "Content"}

type TestimonialService interface {
	// ListPublic only ever returns approved testimonials.
	ListPublic(ctx context.Context, userID string) ([]models.Testimonial, error)
	// ListAll returns every testimonial, optionally filtered by status.
	ListAll(ctx context.Context, userID string, status string) ([]models.Testimonial, error)
	Get(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, req models.TestimonialRequest) (*models.Testimonial, error)
	Update(ctx context.Context, id string, req models.TestimonialRequest) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (*models.Testimonial, error)
	Reject(ctx context.Context, id string) (*models.Testimonial, error)
}

type testimonialService struct {
	repo      repositories.TestimonialRepository
	users     repositories.UserRepository
	resolver  AdminResolver
	validator *Validator
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewTestimonialService(repo repositories.TestimonialRepository, users repositories.UserRepository, resolver AdminResolver, validator *Validator, log logrus.FieldLogger) TestimonialService {
	return &testimonialService{
		repo:      repo,
		users:     users,
		resolver:  resolver,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

func (s *testimonialService) ListPublic(ctx context.Context, userID string) ([]models.Testimonial, error) {
	return s.list(ctx, userID, models.TestimonialApproved)
}

func (s *testimonialService) ListAll(ctx context.Context, userID string, status string) ([]models.Testimonial, error) {
	filter := models.TestimonialStatus(status)
	if filter != "" && !filter.Valid() {
		return nil, models.ErrorValidation{Fields: map[string]string{
			"status": "status must be one of [pending approved rejected]",
		}}
	}
	return s.list(ctx, userID, filter)
}

func (s *testimonialService) list(ctx context.Context, userID string, status models.TestimonialStatus) ([]models.Testimonial, error) {
	owner, err := listOwner(ctx, s.resolver, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListByUser(ctx, owner, status)
	if err != nil {
		return nil, storeError(err, "testimonial")
	}
	return records, nil
}

func (s *testimonialService) Get(ctx context.Context, id string) (*models.Testimonial, error) {
	recordID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, storeError(err, "testimonial")
	}
	return record, nil
}

// Create always starts a testimonial in the pending state.
func (s *testimonialService) Create(ctx context.Context, req models.TestimonialRequest) (*models.Testimonial, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	owner, err := recordOwner(ctx, s.resolver, s.users, req.UserID)
	if err != nil {
		return nil, err
	}

	record := &models.Testimonial{Status: models.TestimonialPending}
	record.UserID = owner
	applyTestimonial(record, req)
	if err := validateTestimonial(record); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, storeError(err, "testimonial")
	}
	return record, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, req models.TestimonialRequest) (*models.Testimonial, error) {
	if err := s.validator.StructExcept(req, testimonialRequired...); err != nil {
		return nil, err
	}
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyTestimonial(record, req)
	if err := validateTestimonial(record); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, storeError(err, "testimonial")
	}
	return record, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	recordID, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, recordID); err != nil {
		return storeError(err, "testimonial")
	}
	return nil
}

func (s *testimonialService) Approve(ctx context.Context, id string) (*models.Testimonial, error) {
	return s.moderate(ctx, id, models.TestimonialApproved)
}

func (s *testimonialService) Reject(ctx context.Context, id string) (*models.Testimonial, error) {
	return s.moderate(ctx, id, models.TestimonialRejected)
}

func (s *testimonialService) moderate(ctx context.Context, id string, status models.TestimonialStatus) (*models.Testimonial, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record.Status = status
	switch status {
	case models.TestimonialApproved:
		record.ApprovedAt = &now
		record.RejectedAt = nil
	case models.TestimonialRejected:
		record.RejectedAt = &now
		record.ApprovedAt = nil
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, storeError(err, "testimonial")
	}
	s.log.WithFields(logrus.Fields{"testimonial_id": record.ID, "status": status}).Info("testimonial moderated")
	return record, nil
}

func applyTestimonial(t *models.Testimonial, req models.TestimonialRequest) {
	setString(&t.Name, req.Name)
	setString(&t.Content, req.Content)
	setString(&t.Position, req.Position)
	setString(&t.Company, req.Company)
	setString(&t.Relationship, req.Relationship)
	setString(&t.AvatarURL, req.AvatarURL)
	setInt(&t.Rating, req.Rating)
	setInt(&t.OrderIndex, req.OrderIndex)
}

func validateTestimonial(t *models.Testimonial) error {
	return requireFields(map[string]string{
		"name":    t.Name,
		"content": t.Content,
	})
}
