// internal/adapters/repository/blob.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/shiptrack/internal/domain"
	"github.com/mahabubulhasibshawon/shiptrack/internal/ports"
)

const DefaultKey = "shipments"

var ErrCorruptBlob = errors.New("corrupt shipment blob")

// BlobRepository keeps the whole collection as one JSON array under a single
// key. Every read and write touches the full collection.
type BlobRepository struct {
	kv     ports.KeyValueStore
	key    string
	strict bool
	logger *zap.Logger
}

type Option func(*BlobRepository)

func WithKey(key string) Option {
	return func(r *BlobRepository) {
		if key != "" {
			r.key = key
		}
	}
}

// WithStrict makes LoadAll return ErrCorruptBlob instead of an empty
// collection when the stored value cannot be decoded.
func WithStrict(strict bool) Option {
	return func(r *BlobRepository) { r.strict = strict }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *BlobRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewBlobRepository(kv ports.KeyValueStore, opts ...Option) ports.ShipmentRepositoryPort {
	r := &BlobRepository{kv: kv, key: DefaultKey, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *BlobRepository) LoadAll(ctx context.Context) ([]domain.Shipment, error) {
	data, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return []domain.Shipment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", r.key, err)
	}
	if len(data) == 0 {
		return []domain.Shipment{}, nil
	}

	var shipments []domain.Shipment
	if err := json.Unmarshal(data, &shipments); err != nil {
		if r.strict {
			return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptBlob, r.key, err)
		}
		r.logger.Warn("discarding unparseable shipment blob",
			zap.String("key", r.key),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return []domain.Shipment{}, nil
	}
	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	return shipments, nil
}

func (r *BlobRepository) SaveAll(ctx context.Context, shipments []domain.Shipment) error {
	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	data, err := json.Marshal(shipments)
	if err != nil {
		return fmt.Errorf("failed to encode shipments: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", r.key, err)
	}
	r.logger.Debug("saved shipments", zap.String("key", r.key), zap.Int("count", len(shipments)))
	return nil
}
