package repositories

import (
	"context"

	"portfolio-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducationRepository interface {
	Create(ctx context.Context, education *models.Education) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Education, error)
	Update(ctx context.Context, education *models.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type educationRepository struct {
	ownedRepository[models.Education]
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{newOwnedRepository[models.Education](db, "order_index asc", "start_date desc")}
}

func (r *educationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Education, error) {
	return r.list(ctx, userID)
}
