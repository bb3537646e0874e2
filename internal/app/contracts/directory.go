package contracts

import (
	"context"
	"doctor-finder-service/internal/app/models"
)

// DirectorySeeder loads a directory snapshot from object storage into the database.
type DirectorySeeder interface {
	SeedFromSnapshot(ctx context.Context, bucketName, objectName string) (*models.SeedResult, error)
}
