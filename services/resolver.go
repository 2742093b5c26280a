package services

import (
	"context"
	"errors"
	"fmt"

	"portfolio-api/cache"
	"portfolio-api/models"
	"portfolio-api/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const adminIDCacheKey = "resolver:admin-id"

// AdminResolver turns a client-supplied user id into a concrete one,
// substituting the owner's id for models.DynamicAdminID.
type AdminResolver interface {
	Resolve(ctx context.Context, id string) (uuid.UUID, error)
	AdminID(ctx context.Context) (uuid.UUID, error)
}

type adminResolver struct {
	userRepo repositories.UserRepository
	cache    cache.Cache
	log      logrus.FieldLogger
}

func NewAdminResolver(userRepo repositories.UserRepository, c cache.Cache, log logrus.FieldLogger) AdminResolver {
	return &adminResolver{userRepo: userRepo, cache: c, log: log}
}

func (r *adminResolver) Resolve(ctx context.Context, id string) (uuid.UUID, error) {
	if id == models.DynamicAdminID {
		return r.AdminID(ctx)
	}
	return ParseID(id)
}

// AdminID only caches successful lookups: the admin id never changes once it exists.
func (r *adminResolver) AdminID(ctx context.Context) (uuid.UUID, error) {
	if cached, err := r.cache.Get(ctx, adminIDCacheKey); err == nil {
		if id, err := uuid.ParseBytes(cached); err == nil {
			return id, nil
		}
	}

	admin, err := r.userRepo.FirstAdmin(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, models.ErrorNoAdminUser{}
		}
		return uuid.Nil, fmt.Errorf("looking up admin user: %w", err)
	}

	if err := r.cache.Set(ctx, adminIDCacheKey, []byte(admin.ID.String()), 0); err != nil {
		r.log.WithError(err).Warn("caching admin id failed")
	}
	return admin.ID, nil
}

// ParseID validates a client-supplied identifier.
func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return uuid.Nil, models.ErrorInvalidID{Value: id}
	}
	return parsed, nil
}
