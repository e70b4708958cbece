// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"
	"errors"

	"github.com/mahabubulhasibshawon/shiptrack/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistent storage primitive the shipment blob lives in.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type ShipmentRepositoryPort interface {
	LoadAll(ctx context.Context) ([]domain.Shipment, error)
	SaveAll(ctx context.Context, shipments []domain.Shipment) error
}

type EventPublisherPort interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}
