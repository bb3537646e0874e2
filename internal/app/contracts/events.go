package contracts

import (
	"context"
	"doctor-finder-service/internal/app/models"
)

type DirectoryEventPublisher interface {
	Publish(ctx context.Context, event models.DirectoryEvent) error
}

type DirectoryEventConsumer interface {
	Start(ctx context.Context) error
	HandleDelivery(ctx context.Context, body []byte) error
	Stop() error
}
