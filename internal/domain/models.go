// internal/domain/models.go
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ShipmentType string

const (
	ShipmentTypeExpress  ShipmentType = "Express"
	ShipmentTypeStandard ShipmentType = "Standard"
	ShipmentTypeEconomy  ShipmentType = "Economy"
)

func (t ShipmentType) Valid() bool {
	switch t {
	case ShipmentTypeExpress, ShipmentTypeStandard, ShipmentTypeEconomy:
		return true
	}
	return false
}

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBooked, StatusInTransit, StatusDelivered:
		return true
	}
	return false
}

// CreatedDateLayout matches the en-US short date the records were first written with.
const CreatedDateLayout = "1/2/2006"

type Shipment struct {
	TrackingID      string       `json:"trackingId" yaml:"trackingId"`
	SenderName      string       `json:"senderName" yaml:"senderName"`
	ReceiverName    string       `json:"receiverName" yaml:"receiverName"`
	ReceiverAddress string       `json:"receiverAddress" yaml:"receiverAddress"`
	DeliveryPincode string       `json:"deliveryPincode" yaml:"deliveryPincode"`
	PackageWeight   float64      `json:"packageWeight" yaml:"packageWeight"`
	ShipmentType    ShipmentType `json:"shipmentType" yaml:"shipmentType"`
	Status          Status       `json:"status" yaml:"status"`
	CreatedDate     string       `json:"createdDate" yaml:"createdDate"`
}

// UnmarshalJSON accepts packageWeight as a number or a numeric string, and a
// numeric deliveryPincode, since older blobs stored raw form input.
func (s *Shipment) UnmarshalJSON(data []byte) error {
	type plain Shipment
	aux := struct {
		*plain
		DeliveryPincode json.RawMessage `json:"deliveryPincode"`
		PackageWeight   json.RawMessage `json:"packageWeight"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	pin, err := rawToString(aux.DeliveryPincode)
	if err != nil {
		return fmt.Errorf("deliveryPincode: %w", err)
	}
	s.DeliveryPincode = pin
	weight, err := rawToString(aux.PackageWeight)
	if err != nil {
		return fmt.Errorf("packageWeight: %w", err)
	}
	s.PackageWeight = 0
	if weight = strings.TrimSpace(weight); weight != "" {
		w, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return fmt.Errorf("packageWeight: %w", err)
		}
		s.PackageWeight = w
	}
	return nil
}

func rawToString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Matches reports whether query is a case-insensitive substring of the
// tracking ID, receiver name or status. An empty query matches everything.
func (s Shipment) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.TrackingID), q) ||
		strings.Contains(strings.ToLower(s.ReceiverName), q) ||
		strings.Contains(strings.ToLower(string(s.Status)), q)
}

// ApplyDefaults fills the preselected form values for a new record.
func (s *Shipment) ApplyDefaults() {
	if s.ShipmentType == "" {
		s.ShipmentType = ShipmentTypeStandard
	}
	if s.Status == "" {
		s.Status = StatusBooked
	}
}

func FormatCreatedDate(t time.Time) string {
	return t.Format(CreatedDateLayout)
}

func Filter(shipments []Shipment, query string) []Shipment {
	out := make([]Shipment, 0, len(shipments))
	for _, s := range shipments {
		if s.Matches(query) {
			out = append(out, s)
		}
	}
	return out
}

func IndexOf(shipments []Shipment, trackingID string) int {
	for i, s := range shipments {
		if s.TrackingID == trackingID {
			return i
		}
	}
	return -1
}
