package grpc

type ShipmentData struct {
	TrackingId      string  `json:"tracking_id"`
	SenderName      string  `json:"sender_name"`
	ReceiverName    string  `json:"receiver_name"`
	ReceiverAddress string  `json:"receiver_address"`
	DeliveryPincode string  `json:"delivery_pincode"`
	PackageWeight   float64 `json:"package_weight"`
	ShipmentType    string  `json:"shipment_type"`
	Status          string  `json:"status"`
	CreatedDate     string  `json:"created_date"`
}

type CreateShipmentRequest struct {
	Shipment *ShipmentData `json:"shipment"`
}

type GetShipmentRequest struct {
	TrackingId string `json:"tracking_id"`
}

type UpdateShipmentRequest struct {
	TrackingId string        `json:"tracking_id"`
	Shipment   *ShipmentData `json:"shipment"`
}

type DeleteShipmentRequest struct {
	TrackingId string `json:"tracking_id"`
}

type ListShipmentsRequest struct {
	Query string `json:"query"`
}

// ShipmentResponse is returned by Create, Get and Update.
type ShipmentResponse struct {
	Message string            `json:"message"`
	Type    string            `json:"type"`
	Code    int32             `json:"code"`
	Data    *ShipmentData     `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type ListShipmentsResponse struct {
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Code    int32           `json:"code"`
	Data    []*ShipmentData `json:"data"`
	Total   int64           `json:"total"`
	Matched int64           `json:"matched"`
}

type DeleteShipmentResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int32  `json:"code"`
}
