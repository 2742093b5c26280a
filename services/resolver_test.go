package services

import (
	"context"
	"testing"

	"portfolio-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminResolver_NoAdmin(t *testing.T) {
	f := newFixture(t)

	_, err := f.resolver.Resolve(context.Background(), models.DynamicAdminID)
	assert.ErrorAs(t, err, &models.ErrorNoAdminUser{})

	// A failed lookup must not be cached.
	admin := f.register(t, "Owner", "owner@example.com")
	id, err := f.resolver.Resolve(context.Background(), models.DynamicAdminID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestAdminResolver_SentinelResolvesToAdmin(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "Owner", "owner@example.com")
	f.register(t, "Visitor", "visitor@example.com")

	id, err := f.resolver.Resolve(context.Background(), models.DynamicAdminID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)

	cached, err := f.cache.Get(context.Background(), adminIDCacheKey)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), string(cached))
}

func TestAdminResolver_ConcreteID(t *testing.T) {
	f := newFixture(t)
	want := uuid.New()

	got, err := f.resolver.Resolve(context.Background(), want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, raw := range []string{"", "abc", uuid.Nil.String()} {
		_, err := f.resolver.Resolve(context.Background(), raw)
		assert.ErrorAs(t, err, &models.ErrorInvalidID{}, raw)
	}
}
