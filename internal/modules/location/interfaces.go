package location

import (
	"context"
	"time"

	"gentlecare/internal/domain"
)

type LocationRepository interface {
	Create(ctx context.Context, l *domain.LocationLog) error
	Latest(ctx context.Context, elderID int64) (*domain.LocationLog, error)
}

type Events interface {
	LocationUpdated(caretakerUserID, elderProfileID int64, elderName string, lat, lng, accuracy float64, at time.Time)
}
