package doctors

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type filterOptionsRedisCache struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

func NewFilterOptionsRedisCache(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.FilterOptionsCache {
	return &filterOptionsRedisCache{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

func (c *filterOptionsRedisCache) Get(ctx context.Context, filters models.DoctorFilters) (*models.FilterOptions, error) {
	key := filterOptionsKey(filters)
	data, err := c.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var options models.FilterOptions
	if err := json.Unmarshal([]byte(data), &options); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &options, nil
}

func (c *filterOptionsRedisCache) Set(ctx context.Context, filters models.DoctorFilters, options models.FilterOptions) error {
	key := filterOptionsKey(filters)
	if err := c.RedisRepository.Set(ctx, key, options, c.TTL); err != nil {
		return err
	}
	return c.RedisRepository.AddToSet(ctx, constvars.RedisKeyFilterOptionsSet, key)
}

// Invalidate removes every cached filter options entry along with the key set.
func (c *filterOptionsRedisCache) Invalidate(ctx context.Context) error {
	keys, err := c.RedisRepository.GetSetMembers(ctx, constvars.RedisKeyFilterOptionsSet)
	if err != nil {
		return err
	}

	c.Log.Info("filterOptionsRedisCache.Invalidate removing cached entries",
		zap.Int(constvars.LoggingCachedKeysCountKey, len(keys)),
	)
	return c.RedisRepository.Delete(ctx, append(keys, constvars.RedisKeyFilterOptionsSet)...)
}

// filterOptionsKey renders "filter_options:<insurance>|<city>|<specialty>" with
// each value query-escaped, so a "|" inside a value cannot shift the fields.
func filterOptionsKey(filters models.DoctorFilters) string {
	parts := []string{
		url.QueryEscape(filters.Insurance),
		url.QueryEscape(filters.City),
		url.QueryEscape(filters.Specialty),
	}
	return constvars.RedisKeyFilterOptionsPrefix + strings.Join(parts, "|")
}
