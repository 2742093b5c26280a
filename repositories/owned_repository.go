package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedRepository holds the CRUD shared by every per-user collection.
type ownedRepository[T any] struct {
	db    *gorm.DB
	order []string
}

func newOwnedRepository[T any](db *gorm.DB, order ...string) ownedRepository[T] {
	return ownedRepository[T]{db: db, order: order}
}

func (r ownedRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r ownedRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r ownedRepository[T]) Update(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete returns gorm.ErrRecordNotFound when no row matched.
func (r ownedRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r ownedRepository[T]) list(ctx context.Context, userID uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Scopes(scopes...)
	for _, o := range r.order {
		query = query.Order(o)
	}
	records := []T{}
	err := query.Find(&records).Error
	return records, err
}
