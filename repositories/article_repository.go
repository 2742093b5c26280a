package repositories

import (
	"context"

	"portfolio-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleFilter struct {
	Kind          models.ArticleKind
	PublishedOnly bool
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*models.Article, error)
	SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ArticleFilter) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleRepository struct {
	ownedRepository[models.Article]
}

// Drafts have no published_at; the IS NULL key sorts them after published
// entries on every driver.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{newOwnedRepository[models.Article](db,
		"order_index asc", "published_at IS NULL", "published_at desc", "created_at desc")}
}

func (r *articleRepository) GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("user_id = ? AND slug = ?", userID, slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("slug = ? AND id <> ?", slug, exclude).
		Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter ArticleFilter) ([]models.Article, error) {
	return r.list(ctx, userID, func(db *gorm.DB) *gorm.DB {
		if filter.Kind != "" {
			db = db.Where("kind = ?", filter.Kind)
		}
		if filter.PublishedOnly {
			db = db.Where("published = ?", true)
		}
		return db
	})
}
