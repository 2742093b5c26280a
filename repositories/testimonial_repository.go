package repositories

import (
	"context"

	"portfolio-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	// ListByUser filters by status unless it is empty.
	ListByUser(ctx context.Context, userID uuid.UUID, status models.TestimonialStatus) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	ownedRepository[models.Testimonial]
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{newOwnedRepository[models.Testimonial](db, "order_index asc", "created_at desc")}
}

func (r *testimonialRepository) ListByUser(ctx context.Context, userID uuid.UUID, status models.TestimonialStatus) ([]models.Testimonial, error) {
	if status == "" {
		return r.list(ctx, userID)
	}
	return r.list(ctx, userID, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}
