// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/shiptrack/internal/application"
	"github.com/mahabubulhasibshawon/shiptrack/internal/domain"
)

type Server struct {
	shipmentService *application.ShipmentService
	logger          *zap.Logger
}

func NewServer(svc *application.ShipmentService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{shipmentService: svc, logger: logger}
}

func (s *Server) CreateShipment(ctx context.Context, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if req.Shipment == nil {
		return &ShipmentResponse{Message: "shipment is required", Type: "error", Code: 400}, nil
	}
	created, err := s.shipmentService.Create(ctx, toDomain(req.Shipment))
	if err != nil {
		return s.shipmentError(err)
	}
	return &ShipmentResponse{
		Message: "Shipment created successfully",
		Type:    "success",
		Code:    200,
		Data:    fromDomain(created),
	}, nil
}

func (s *Server) GetShipment(ctx context.Context, req *GetShipmentRequest) (*ShipmentResponse, error) {
	shipment, err := s.shipmentService.Get(ctx, req.TrackingId)
	if err != nil {
		return s.shipmentError(err)
	}
	return &ShipmentResponse{Message: "Shipment fetched", Type: "success", Code: 200, Data: fromDomain(shipment)}, nil
}

func (s *Server) ListShipments(ctx context.Context, req *ListShipmentsRequest) (*ListShipmentsResponse, error) {
	shipments, total, err := s.shipmentService.List(ctx, req.Query)
	if err != nil {
		s.logger.Error("list shipments failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to load shipments")
	}

	data := make([]*ShipmentData, 0, len(shipments))
	for _, sh := range shipments {
		data = append(data, fromDomain(sh))
	}
	return &ListShipmentsResponse{
		Message: "Shipments successfully fetched.",
		Type:    "success",
		Code:    200,
		Data:    data,
		Total:   int64(total),
		Matched: int64(len(data)),
	}, nil
}

func (s *Server) UpdateShipment(ctx context.Context, req *UpdateShipmentRequest) (*ShipmentResponse, error) {
	if req.Shipment == nil {
		return &ShipmentResponse{Message: "shipment is required", Type: "error", Code: 400}, nil
	}
	updated, err := s.shipmentService.Update(ctx, req.TrackingId, toDomain(req.Shipment))
	if err != nil {
		return s.shipmentError(err)
	}
	return &ShipmentResponse{
		Message: "Shipment updated successfully",
		Type:    "success",
		Code:    200,
		Data:    fromDomain(updated),
	}, nil
}

func (s *Server) DeleteShipment(ctx context.Context, req *DeleteShipmentRequest) (*DeleteShipmentResponse, error) {
	err := s.shipmentService.Delete(ctx, req.TrackingId)
	if errors.Is(err, domain.ErrNotFound) {
		return &DeleteShipmentResponse{Message: err.Error(), Type: "error", Code: 404}, nil
	}
	if err != nil {
		s.logger.Error("delete shipment failed", zap.String("tracking_id", req.TrackingId), zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to delete shipment")
	}
	return &DeleteShipmentResponse{Message: "Shipment deleted successfully", Type: "success", Code: 200}, nil
}

// shipmentError turns user-correctable failures into an error envelope and
// everything else into a gRPC Internal status.
func (s *Server) shipmentError(err error) (*ShipmentResponse, error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		return &ShipmentResponse{Message: "validation failed", Type: "error", Code: 422, Errors: verr.Fields}, nil
	case errors.Is(err, domain.ErrNotFound):
		return &ShipmentResponse{Message: err.Error(), Type: "error", Code: 404}, nil
	case errors.Is(err, domain.ErrDuplicateTrackingID):
		return &ShipmentResponse{Message: err.Error(), Type: "error", Code: 409}, nil
	}
	s.logger.Error("shipment operation failed", zap.Error(err))
	return nil, status.Error(codes.Internal, "storage failure")
}

// LoggingInterceptor logs every unary call with its duration and status code.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("grpc call",
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
			zap.String("code", status.Code(err).String()))
		return resp, err
	}
}

func toDomain(d *ShipmentData) domain.Shipment {
	return domain.Shipment{
		TrackingID:      d.TrackingId,
		SenderName:      d.SenderName,
		ReceiverName:    d.ReceiverName,
		ReceiverAddress: d.ReceiverAddress,
		DeliveryPincode: d.DeliveryPincode,
		PackageWeight:   d.PackageWeight,
		ShipmentType:    domain.ShipmentType(d.ShipmentType),
		Status:          domain.Status(d.Status),
		CreatedDate:     d.CreatedDate,
	}
}

func fromDomain(s domain.Shipment) *ShipmentData {
	return &ShipmentData{
		TrackingId:      s.TrackingID,
		SenderName:      s.SenderName,
		ReceiverName:    s.ReceiverName,
		ReceiverAddress: s.ReceiverAddress,
		DeliveryPincode: s.DeliveryPincode,
		PackageWeight:   s.PackageWeight,
		ShipmentType:    string(s.ShipmentType),
		Status:          string(s.Status),
		CreatedDate:     s.CreatedDate,
	}
}
