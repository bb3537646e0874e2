package doctors

import (
	"context"
	"doctor-finder-service/internal/app/mocks"
	"doctor-finder-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilterOptionsRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Under Tracked Key", func(t *testing.T) {
		redisRepo := mocks.NewMockRedisRepository()
		cache := NewFilterOptionsRedisCache(redisRepo, time.Hour, zap.NewNop())

		require.NoError(t, cache.Set(ctx, models.DoctorFilters{Insurance: "Aetna"}, models.FilterOptions{Cities: []string{"Dallas"}}))

		assert.Equal(t, time.Hour, redisRepo.TTL("filter_options:Aetna||"))
		members, err := redisRepo.GetSetMembers(ctx, "filter_options:keys")
		require.NoError(t, err)
		assert.Equal(t, []string{"filter_options:Aetna||"}, members)

		got, err := cache.Get(ctx, models.DoctorFilters{Insurance: "Aetna"})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"Dallas"}, got.Cities)
	})

	t.Run("Separator Inside Value Does Not Collide", func(t *testing.T) {
		redisRepo := mocks.NewMockRedisRepository()
		cache := NewFilterOptionsRedisCache(redisRepo, time.Hour, zap.NewNop())

		poisoned := models.FilterOptions{Cities: []string{"Nowhere"}}
		require.NoError(t, cache.Set(ctx, models.DoctorFilters{Insurance: "a|b"}, poisoned))

		got, err := cache.Get(ctx, models.DoctorFilters{Insurance: "a", City: "b|"})
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = cache.Get(ctx, models.DoctorFilters{Insurance: "a|b"})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, poisoned.Cities, got.Cities)
	})

	t.Run("Distinct Filters Map To Distinct Keys", func(t *testing.T) {
		filters := []models.DoctorFilters{
			{Insurance: "a|b"},
			{Insurance: "a", City: "b|"},
			{Insurance: "a", City: "b", Specialty: ""},
			{Insurance: "a|b|", City: ""},
			{City: "%7C"},
			{City: "|"},
		}

		seen := map[string]models.DoctorFilters{}
		for _, f := range filters {
			key := filterOptionsKey(f)
			if previous, ok := seen[key]; ok {
				t.Fatalf("key %q shared by %+v and %+v", key, previous, f)
			}
			seen[key] = f
		}
	})

	t.Run("Invalidate Drops Entries And Key Set", func(t *testing.T) {
		redisRepo := mocks.NewMockRedisRepository()
		cache := NewFilterOptionsRedisCache(redisRepo, time.Hour, zap.NewNop())

		require.NoError(t, cache.Set(ctx, models.DoctorFilters{}, models.FilterOptions{}))
		require.NoError(t, cache.Set(ctx, models.DoctorFilters{City: "Dallas"}, models.FilterOptions{}))
		require.NoError(t, cache.Invalidate(ctx))

		assert.Empty(t, redisRepo.Keys())
	})
}
