package distance

import (
	"doctor-finder-service/internal/app/models"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	houston    = models.Coordinate{Lat: 29.7604, Lng: -95.3698}
	dallas     = models.Coordinate{Lat: 32.7767, Lng: -96.7970}
	denton     = models.Coordinate{Lat: 33.2148, Lng: -97.1331}
	lewisville = models.Coordinate{Lat: 33.0462, Lng: -96.9942}
	newYork    = models.Coordinate{Lat: 40.7128, Lng: -74.0060}
	losAngeles = models.Coordinate{Lat: 34.0522, Lng: -118.2437}
)

func TestHaversineMiles(t *testing.T) {
	tests := []struct {
		name    string
		patient models.Coordinate
		clinic  models.Coordinate
		want    float64
	}{
		{name: "Identical Points", patient: dallas, clinic: dallas, want: 0.0},
		{name: "Houston To Dallas", patient: houston, clinic: dallas, want: 224.8},
		{name: "Dallas To Denton", patient: dallas, clinic: denton, want: 36.0},
		{name: "Dallas To Lewisville", patient: dallas, clinic: lewisville, want: 21.9},
		{name: "New York To Los Angeles", patient: newYork, clinic: losAngeles, want: 2445.6},
		{name: "One Degree Of Longitude At Equator", patient: models.Coordinate{}, clinic: models.Coordinate{Lng: 1}, want: 69.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HaversineMiles(tt.patient, tt.clinic))
		})
	}
}

func TestHaversineMilesIsSymmetric(t *testing.T) {
	assert.Equal(t, HaversineMiles(houston, dallas), HaversineMiles(dallas, houston))
	assert.Equal(t, HaversineMiles(newYork, denton), HaversineMiles(denton, newYork))
}

func TestHaversineMilesAntipodalPoints(t *testing.T) {
	pairs := [][2]models.Coordinate{
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 180}},
		{{Lat: 45, Lng: 0}, {Lat: -45, Lng: 180}},
		{{Lat: 86.9738, Lng: 33.5461}, {Lat: -86.9738, Lng: -146.4539}},
		{{Lat: 89.9, Lng: 0}, {Lat: -89.9, Lng: 180}},
	}

	for _, pair := range pairs {
		got := HaversineMiles(pair[0], pair[1])
		assert.False(t, math.IsNaN(got), "%+v", pair)
		assert.InDelta(t, 12436.9, got, 0.1, "%+v", pair)
	}
}
