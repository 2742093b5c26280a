package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-api/models"
	"portfolio-api/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listOwner resolves the user a list request is about; blank means the owner.
func listOwner(ctx context.Context, resolver AdminResolver, raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		raw = models.DynamicAdminID
	}
	return resolver.Resolve(ctx, raw)
}

// recordOwner resolves the owner of a record about to be created and checks it exists.
func recordOwner(ctx context.Context, resolver AdminResolver, users repositories.UserRepository, raw string) (uuid.UUID, error) {
	id, err := listOwner(ctx, resolver, raw)
	if err != nil {
		return uuid.Nil, err
	}
	ok, err := users.Exists(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("checking owner: %w", err)
	}
	if !ok {
		return uuid.Nil, models.ErrorNotFound{Resource: "user"}
	}
	return id, nil
}

func storeError(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Resource: resource}
	}
	return fmt.Errorf("%s store: %w", resource, err)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
