package distance

import (
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"math"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var _ contracts.DistanceCalculator = (*Cache)(nil)

// Cache memoizes haversine distances per (patient, clinic) pair. It is bounded
// and safe for concurrent use; concurrent misses on one key compute once.
type Cache struct {
	entries *lru.Cache[string, float64]
	group   singleflight.Group
	compute func(patient, clinic models.Coordinate) float64
	log     *zap.Logger
}

func NewCache(size int, logger *zap.Logger) *Cache {
	return newCacheWithCompute(size, HaversineMiles, logger)
}

func newCacheWithCompute(size int, compute func(patient, clinic models.Coordinate) float64, logger *zap.Logger) *Cache {
	if size <= 0 {
		size = constvars.DefaultDistanceCacheSize
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, float64](size)
	return &Cache{
		entries: entries,
		compute: compute,
		log:     logger,
	}
}

// DistanceMiles returns the rounded distance between patient and clinic, or nil
// when either coordinate is unknown.
func (c *Cache) DistanceMiles(patient, clinic *models.Coordinate) (*float64, error) {
	if patient == nil || clinic == nil {
		return nil, nil
	}
	if err := checkFinite("patient", *patient); err != nil {
		return nil, err
	}
	if err := checkFinite("clinic", *clinic); err != nil {
		return nil, err
	}

	key := cacheKey(*patient, *clinic)
	if miles, ok := c.entries.Get(key); ok {
		return &miles, nil
	}

	value, _, _ := c.group.Do(key, func() (interface{}, error) {
		if miles, ok := c.entries.Get(key); ok {
			return miles, nil
		}
		miles := c.compute(*patient, *clinic)
		c.entries.Add(key, miles)
		c.log.Debug("distance.Cache computed distance",
			zap.String(constvars.LoggingDistanceCacheKey, key),
			zap.Float64(constvars.LoggingDistanceMilesKey, miles),
		)
		return miles, nil
	})

	miles := value.(float64)
	return &miles, nil
}

func (c *Cache) Clear() {
	c.entries.Purge()
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

// cacheKey renders "pLat,pLng-cLat,cLng". Patient and clinic are not interchangeable.
func cacheKey(patient, clinic models.Coordinate) string {
	return formatCoordinate(patient) + "-" + formatCoordinate(clinic)
}

func formatCoordinate(coordinate models.Coordinate) string {
	return strconv.FormatFloat(coordinate.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(coordinate.Lng, 'f', -1, 64)
}

func checkFinite(prefix string, coordinate models.Coordinate) error {
	if !isFinite(coordinate.Lat) {
		return exceptions.ErrNonFiniteCoordinate(prefix + ".lat")
	}
	if !isFinite(coordinate.Lng) {
		return exceptions.ErrNonFiniteCoordinate(prefix + ".lng")
	}
	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
