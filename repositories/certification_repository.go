package repositories

import (
	"context"

	"portfolio-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificationRepository interface {
	Create(ctx context.Context, certification *models.Certification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Certification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Certification, error)
	Update(ctx context.Context, certification *models.Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificationRepository struct {
	ownedRepository[models.Certification]
}

func NewCertificationRepository(db *gorm.DB) CertificationRepository {
	return &certificationRepository{newOwnedRepository[models.Certification](db, "order_index asc", "issue_date desc")}
}

func (r *certificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Certification, error) {
	return r.list(ctx, userID)
}
