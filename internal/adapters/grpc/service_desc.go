package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "shipment.ShipmentService"

const (
	methodCreateShipment = "/" + serviceName + "/CreateShipment"
	methodGetShipment    = "/" + serviceName + "/GetShipment"
	methodListShipments  = "/" + serviceName + "/ListShipments"
	methodUpdateShipment = "/" + serviceName + "/UpdateShipment"
	methodDeleteShipment = "/" + serviceName + "/DeleteShipment"
)

type ShipmentServiceServer interface {
	CreateShipment(context.Context, *CreateShipmentRequest) (*ShipmentResponse, error)
	GetShipment(context.Context, *GetShipmentRequest) (*ShipmentResponse, error)
	ListShipments(context.Context, *ListShipmentsRequest) (*ListShipmentsResponse, error)
	UpdateShipment(context.Context, *UpdateShipmentRequest) (*ShipmentResponse, error)
	DeleteShipment(context.Context, *DeleteShipmentRequest) (*DeleteShipmentResponse, error)
}

func RegisterShipmentServiceServer(s grpc.ServiceRegistrar, srv ShipmentServiceServer) {
	s.RegisterService(&shipmentServiceDesc, srv)
}

var shipmentServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ShipmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateShipment", Handler: createShipmentHandler},
		{MethodName: "GetShipment", Handler: getShipmentHandler},
		{MethodName: "ListShipments", Handler: listShipmentsHandler},
		{MethodName: "UpdateShipment", Handler: updateShipmentHandler},
		{MethodName: "DeleteShipment", Handler: deleteShipmentHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shipment.proto",
}

func createShipmentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateShipmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShipmentServiceServer).CreateShipment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCreateShipment}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShipmentServiceServer).CreateShipment(ctx, req.(*CreateShipmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getShipmentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShipmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShipmentServiceServer).GetShipment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetShipment}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShipmentServiceServer).GetShipment(ctx, req.(*GetShipmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listShipmentsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListShipmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShipmentServiceServer).ListShipments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListShipments}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShipmentServiceServer).ListShipments(ctx, req.(*ListShipmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func updateShipmentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateShipmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShipmentServiceServer).UpdateShipment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodUpdateShipment}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShipmentServiceServer).UpdateShipment(ctx, req.(*UpdateShipmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteShipmentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteShipmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShipmentServiceServer).DeleteShipment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDeleteShipment}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShipmentServiceServer).DeleteShipment(ctx, req.(*DeleteShipmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type ShipmentServiceClient interface {
	CreateShipment(ctx context.Context, in *CreateShipmentRequest, opts ...grpc.CallOption) (*ShipmentResponse, error)
	GetShipment(ctx context.Context, in *GetShipmentRequest, opts ...grpc.CallOption) (*ShipmentResponse, error)
	ListShipments(ctx context.Context, in *ListShipmentsRequest, opts ...grpc.CallOption) (*ListShipmentsResponse, error)
	UpdateShipment(ctx context.Context, in *UpdateShipmentRequest, opts ...grpc.CallOption) (*ShipmentResponse, error)
	DeleteShipment(ctx context.Context, in *DeleteShipmentRequest, opts ...grpc.CallOption) (*DeleteShipmentResponse, error)
}

type shipmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShipmentServiceClient(cc grpc.ClientConnInterface) ShipmentServiceClient {
	return &shipmentServiceClient{cc: cc}
}

func (c *shipmentServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *shipmentServiceClient) CreateShipment(ctx context.Context, in *CreateShipmentRequest, opts ...grpc.CallOption) (*ShipmentResponse, error) {
	out := new(ShipmentResponse)
	if err := c.invoke(ctx, methodCreateShipment, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shipmentServiceClient) GetShipment(ctx context.Context, in *GetShipmentRequest, opts ...grpc.CallOption) (*ShipmentResponse, error) {
	out := new(ShipmentResponse)
	if err := c.invoke(ctx, methodGetShipment, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shipmentServiceClient) ListShipments(ctx context.Context, in *ListShipmentsRequest, opts ...grpc.CallOption) (*ListShipmentsResponse, error) {
	out := new(ListShipmentsResponse)
	if err := c.invoke(ctx, methodListShipments, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shipmentServiceClient) UpdateShipment(ctx context.Context, in *UpdateShipmentRequest, opts ...grpc.CallOption) (*ShipmentResponse, error) {
	out := new(ShipmentResponse)
	if err := c.invoke(ctx, methodUpdateShipment, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shipmentServiceClient) DeleteShipment(ctx context.Context, in *DeleteShipmentRequest, opts ...grpc.CallOption) (*DeleteShipmentResponse, error) {
	out := new(DeleteShipmentResponse)
	if err := c.invoke(ctx, methodDeleteShipment, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
