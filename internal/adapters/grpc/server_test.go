// internal/adapters/grpc/server_test.go
package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mahabubulhasibshawon/shiptrack/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/shiptrack/internal/application"
	"github.com/mahabubulhasibshawon/shiptrack/internal/ports"
)

const bufSize = 1024 * 1024

func setupTestServer(t *testing.T, repo ports.ShipmentRepositoryPort) ShipmentServiceClient {
	t.Helper()
	lis := bufconn.Listen(bufSize)

	svc := application.NewShipmentService(repo)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(zap.NewNop())))
	RegisterShipmentServiceServer(grpcServer, NewServer(svc, zap.NewNop()))

	go func() {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			t.Logf("Server failed: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
	})
	return NewShipmentServiceClient(conn)
}

func validData() *ShipmentData {
	return &ShipmentData{
		SenderName:      "Asha Rao",
		ReceiverName:    "Vikram Shah",
		ReceiverAddress: "12 MG Road, Bengaluru",
		DeliveryPincode: "560001",
		PackageWeight:   2.5,
		ShipmentType:    "Express",
		Status:          "Booked",
	}
}

func TestGRPCServer(t *testing.T) {
	client := setupTestServer(t, repository.NewBlobRepository(repository.NewMemoryStore()))
	ctx := context.Background()

	var trackingID string
	t.Run("CreateShipment_Success", func(t *testing.T) {
		resp, err := client.CreateShipment(ctx, &CreateShipmentRequest{Shipment: validData()})
		if err != nil {
			t.Fatalf("CreateShipment failed: %v", err)
		}
		if resp.Code != 200 || resp.Type != "success" || resp.Data == nil {
			t.Fatalf("CreateShipment response = %+v, want code 200", resp)
		}
		if resp.Data.TrackingId != "RST-0001" || resp.Data.CreatedDate == "" {
			t.Errorf("CreateShipment data = %+v", resp.Data)
		}
		trackingID = resp.Data.TrackingId
	})

	t.Run("CreateShipment_Validation", func(t *testing.T) {
		bad := validData()
		bad.DeliveryPincode = "5600"
		bad.PackageWeight = -1
		resp, err := client.CreateShipment(ctx, &CreateShipmentRequest{Shipment: bad})
		if err != nil {
			t.Fatalf("CreateShipment failed: %v", err)
		}
		// Errors are keyed by the persisted field names.
		if resp.Code != 422 || resp.Errors["deliveryPincode"] == "" || resp.Errors["packageWeight"] == "" {
			t.Errorf("CreateShipment response = %+v, want 422 with pincode and weight errors", resp)
		}
	})

	t.Run("CreateShipment_MissingBody", func(t *testing.T) {
		resp, err := client.CreateShipment(ctx, &CreateShipmentRequest{})
		if err != nil {
			t.Fatalf("CreateShipment failed: %v", err)
		}
		if resp.Code != 400 {
			t.Errorf("CreateShipment response = %+v, want code 400", resp)
		}
	})

	t.Run("ListShipments_ByTrackingID", func(t *testing.T) {
		resp, err := client.ListShipments(ctx, &ListShipmentsRequest{Query: trackingID})
		if err != nil {
			t.Fatalf("ListShipments failed: %v", err)
		}
		if resp.Code != 200 || len(resp.Data) != 1 || resp.Data[0].TrackingId != trackingID {
			t.Errorf("ListShipments response = %+v", resp)
		}
	})

	t.Run("UpdateShipment_Status", func(t *testing.T) {
		edit := validData()
		edit.Status = "Delivered"
		resp, err := client.UpdateShipment(ctx, &UpdateShipmentRequest{TrackingId: trackingID, Shipment: edit})
		if err != nil {
			t.Fatalf("UpdateShipment failed: %v", err)
		}
		if resp.Code != 200 || resp.Data.Status != "Delivered" || resp.Data.TrackingId != trackingID {
			t.Errorf("UpdateShipment response = %+v", resp)
		}

		got, err := client.GetShipment(ctx, &GetShipmentRequest{TrackingId: trackingID})
		if err != nil {
			t.Fatalf("GetShipment failed: %v", err)
		}
		if got.Data == nil || got.Data.Status != "Delivered" {
			t.Errorf("GetShipment response = %+v", got)
		}
	})

	t.Run("UpdateShipment_NotFound", func(t *testing.T) {
		resp, err := client.UpdateShipment(ctx, &UpdateShipmentRequest{TrackingId: "RST-0404", Shipment: validData()})
		if err != nil {
			t.Fatalf("UpdateShipment failed: %v", err)
		}
		if resp.Code != 404 {
			t.Errorf("UpdateShipment response = %+v, want code 404", resp)
		}
	})

	t.Run("DeleteShipment", func(t *testing.T) {
		resp, err := client.DeleteShipment(ctx, &DeleteShipmentRequest{TrackingId: trackingID})
		if err != nil {
			t.Fatalf("DeleteShipment failed: %v", err)
		}
		if resp.Code != 200 {
			t.Errorf("DeleteShipment response = %+v", resp)
		}
		again, err := client.DeleteShipment(ctx, &DeleteShipmentRequest{TrackingId: trackingID})
		if err != nil {
			t.Fatalf("DeleteShipment failed: %v", err)
		}
		if again.Code != 404 {
			t.Errorf("second DeleteShipment response = %+v, want code 404", again)
		}

		list, err := client.ListShipments(ctx, &ListShipmentsRequest{})
		if err != nil {
			t.Fatalf("ListShipments failed: %v", err)
		}
		if list.Total != 0 || len(list.Data) != 0 {
			t.Errorf("ListShipments after delete = %+v", list)
		}
	})
}

func TestGRPCServer_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ports.NewMockShipmentRepositoryPort(ctrl)
	repo.EXPECT().LoadAll(gomock.Any()).Return(nil, errors.New("connection refused")).AnyTimes()
	client := setupTestServer(t, repo)

	_, err := client.ListShipments(context.Background(), &ListShipmentsRequest{})
	if status.Code(err) != codes.Internal {
		t.Errorf("ListShipments error = %v, want Internal", err)
	}
	_, err = client.CreateShipment(context.Background(), &CreateShipmentRequest{Shipment: validData()})
	if status.Code(err) != codes.Internal {
		t.Errorf("CreateShipment error = %v, want Internal", err)
	}
}
