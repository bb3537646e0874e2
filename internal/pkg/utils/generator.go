package utils

import (
	"doctor-finder-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateLockValue returns the token a lock holder uses to prove ownership on release.
func GenerateLockValue() string {
	return uuid.NewString()
}
