// internal/application/shipment_service.go
package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/shiptrack/internal/domain"
	"github.com/mahabubulhasibshawon/shiptrack/internal/ports"
)

const (
	EventShipmentCreated = "shipment.created"
	EventShipmentUpdated = "shipment.updated"
	EventShipmentDeleted = "shipment.deleted"
)

type Event struct {
	Type    string          `json:"event"`
	Payload domain.Shipment `json:"payload"`
}

// ValidationError carries the per-field messages a form shows inline.
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

// IDGenerator picks the tracking ID for a new record given the current collection.
type IDGenerator func(existing []domain.Shipment) string

func CountIDGenerator(existing []domain.Shipment) string {
	return domain.NextTrackingID(len(existing))
}

func MaxIDGenerator(existing []domain.Shipment) string {
	return domain.NextTrackingIDAfter(existing)
}

type ShipmentService struct {
	repo      ports.ShipmentRepositoryPort
	publisher ports.EventPublisherPort
	logger    *zap.Logger
	nextID    IDGenerator
	now       func() time.Time

	// Serializes load-modify-save cycles.
	mu sync.Mutex
}

type Option func(*ShipmentService)

func WithPublisher(p ports.EventPublisherPort) Option {
	return func(s *ShipmentService) { s.publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *ShipmentService) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *ShipmentService) {
		if g != nil {
			s.nextID = g
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *ShipmentService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewShipmentService(repo ports.ShipmentRepositoryPort, opts ...Option) *ShipmentService {
	s := &ShipmentService{
		repo:   repo,
		logger: zap.NewNop(),
		nextID: MaxIDGenerator,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the records matching query in stored order, and the size of
// the whole collection.
func (s *ShipmentService) List(ctx context.Context, query string) ([]domain.Shipment, int, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return domain.Filter(all, query), len(all), nil
}

func (s *ShipmentService) Get(ctx context.Context, trackingID string) (domain.Shipment, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Shipment{}, err
	}
	i := domain.IndexOf(all, trackingID)
	if i < 0 {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrNotFound, trackingID)
	}
	return all[i], nil
}

func (s *ShipmentService) Create(ctx context.Context, req domain.Shipment) (domain.Shipment, error) {
	req.ApplyDefaults()
	if errs := domain.Validate(req); len(errs) > 0 {
		return domain.Shipment{}, &ValidationError{Fields: errs}
	}
	created, err := s.create(ctx, req)
	if err != nil {
		return domain.Shipment{}, err
	}
	s.logger.Info("shipment created", zap.String("tracking_id", created.TrackingID))
	s.publish(ctx, EventShipmentCreated, created)
	return created, nil
}

func (s *ShipmentService) create(ctx context.Context, req domain.Shipment) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Shipment{}, err
	}
	req.TrackingID = s.nextID(all)
	if domain.IndexOf(all, req.TrackingID) >= 0 {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrDuplicateTrackingID, req.TrackingID)
	}
	req.CreatedDate = domain.FormatCreatedDate(s.now())

	all = append(all, req)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return domain.Shipment{}, err
	}
	return req, nil
}

// Update replaces the record with the given tracking ID. The stored tracking
// ID and created date always win over the request.
func (s *ShipmentService) Update(ctx context.Context, trackingID string, req domain.Shipment) (domain.Shipment, error) {
	if errs := domain.Validate(req); len(errs) > 0 {
		return domain.Shipment{}, &ValidationError{Fields: errs}
	}
	updated, err := s.update(ctx, trackingID, req)
	if err != nil {
		return domain.Shipment{}, err
	}
	s.logger.Info("shipment updated", zap.String("tracking_id", trackingID), zap.String("status", string(updated.Status)))
	s.publish(ctx, EventShipmentUpdated, updated)
	return updated, nil
}

func (s *ShipmentService) update(ctx context.Context, trackingID string, req domain.Shipment) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Shipment{}, err
	}
	i := domain.IndexOf(all, trackingID)
	if i < 0 {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrNotFound, trackingID)
	}
	req.TrackingID = all[i].TrackingID
	req.CreatedDate = all[i].CreatedDate
	all[i] = req

	if err := s.repo.SaveAll(ctx, all); err != nil {
		return domain.Shipment{}, err
	}
	return req, nil
}

// Delete removes every record carrying trackingID.
func (s *ShipmentService) Delete(ctx context.Context, trackingID string) error {
	removed, err := s.delete(ctx, trackingID)
	if err != nil {
		return err
	}
	s.logger.Info("shipment deleted", zap.String("tracking_id", trackingID))
	s.publish(ctx, EventShipmentDeleted, removed)
	return nil
}

// delete returns the first removed record.
func (s *ShipmentService) delete(ctx context.Context, trackingID string) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Shipment{}, err
	}
	kept := make([]domain.Shipment, 0, len(all))
	var removed *domain.Shipment
	for i := range all {
		if all[i].TrackingID == trackingID {
			if removed == nil {
				removed = &all[i]
			}
			continue
		}
		kept = append(kept, all[i])
	}
	if removed == nil {
		return domain.Shipment{}, fmt.Errorf("%w: %s", domain.ErrNotFound, trackingID)
	}
	if err := s.repo.SaveAll(ctx, kept); err != nil {
		return domain.Shipment{}, err
	}
	return *removed, nil
}

// publish runs after the mutation lock is released and never fails the
// calling operation; the record is already saved.
func (s *ShipmentService) publish(ctx context.Context, eventType string, shipment domain.Shipment) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, shipment.TrackingID, Event{Type: eventType, Payload: shipment}); err != nil {
		s.logger.Warn("failed to publish shipment event",
			zap.String("event", eventType),
			zap.String("tracking_id", shipment.TrackingID),
			zap.Error(err))
	}
}
