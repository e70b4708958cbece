package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"
	"time"
)

func validShipment() Shipment {
	return Shipment{
		TrackingID:      "RST-0001",
		SenderName:      "Asha Rao",
		ReceiverName:    "Vikram Shah",
		ReceiverAddress: "12 MG Road, Bengaluru",
		DeliveryPincode: "560001",
		PackageWeight:   2.5,
		ShipmentType:    ShipmentTypeExpress,
		Status:          StatusBooked,
		CreatedDate:     "10/15/2026",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *Shipment)
		wantField string
	}{
		{name: "Valid shipment", mutate: func(s *Shipment) {}},
		{name: "Empty sender", mutate: func(s *Shipment) { s.SenderName = "" }, wantField: FieldSenderName},
		{name: "Whitespace sender", mutate: func(s *Shipment) { s.SenderName = "   \t" }, wantField: FieldSenderName},
		{name: "Whitespace receiver", mutate: func(s *Shipment) { s.ReceiverName = " " }, wantField: FieldReceiverName},
		{name: "Empty address", mutate: func(s *Shipment) { s.ReceiverAddress = "\n" }, wantField: FieldReceiverAddress},
		{name: "Pincode with leading zero", mutate: func(s *Shipment) { s.DeliveryPincode = "012345" }},
		{name: "Short pincode", mutate: func(s *Shipment) { s.DeliveryPincode = "5600" }, wantField: FieldDeliveryPincode},
		{name: "Alphanumeric pincode", mutate: func(s *Shipment) { s.DeliveryPincode = "56000A" }, wantField: FieldDeliveryPincode},
		{name: "Long pincode", mutate: func(s *Shipment) { s.DeliveryPincode = "5600011" }, wantField: FieldDeliveryPincode},
		{name: "Non-ASCII digits", mutate: func(s *Shipment) { s.DeliveryPincode = "५६०००१" }, wantField: FieldDeliveryPincode},
		{name: "Zero weight", mutate: func(s *Shipment) { s.PackageWeight = 0 }, wantField: FieldPackageWeight},
		{name: "Negative weight", mutate: func(s *Shipment) { s.PackageWeight = -1 }, wantField: FieldPackageWeight},
		{name: "NaN weight", mutate: func(s *Shipment) { s.PackageWeight = math.NaN() }, wantField: FieldPackageWeight},
		{name: "Half kilo", mutate: func(s *Shipment) { s.PackageWeight = 0.5 }},
		{name: "Unknown type", mutate: func(s *Shipment) { s.ShipmentType = "Overnight" }, wantField: FieldShipmentType},
		{name: "Unknown status", mutate: func(s *Shipment) { s.Status = "Lost" }, wantField: FieldStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShipment()
			tt.mutate(&s)
			errs := Validate(s)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Errorf("Validate() = %v, want exactly one error on %s", errs, tt.wantField)
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, missing %s", errs, tt.wantField)
			}
		})
	}
}

func TestValidate_EmptyCandidate(t *testing.T) {
	errs := Validate(Shipment{})
	for _, field := range []string{FieldSenderName, FieldReceiverName, FieldReceiverAddress, FieldDeliveryPincode, FieldPackageWeight, FieldShipmentType, FieldStatus} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Validate(empty) missing error for %s", field)
		}
	}
	if errs[FieldPackageWeight] != "Weight must be greater than 0" {
		t.Errorf("packageWeight message = %q", errs[FieldPackageWeight])
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{FieldStatus: "bad", FieldDeliveryPincode: "short"}
	if got, want := fe.Error(), "deliveryPincode: short; status: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNextTrackingID(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "RST-0001"},
		{9, "RST-0010"},
		{998, "RST-0999"},
		{9999, "RST-10000"},
	}
	for _, tt := range tests {
		if got := NextTrackingID(tt.count); got != tt.want {
			t.Errorf("NextTrackingID(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

func TestNextTrackingIDAfter(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "Empty collection", ids: nil, want: "RST-0001"},
		{name: "Contiguous", ids: []string{"RST-0001", "RST-0002"}, want: "RST-0003"},
		{name: "Gap after deletion", ids: []string{"RST-0001", "RST-0003"}, want: "RST-0004"},
		{name: "Foreign ids ignored", ids: []string{"ABC-0009", "RST-00x1", "RST-0002"}, want: "RST-0003"},
		{name: "Largest int has no successor", ids: []string{"RST-0002", TrackingIDPrefix + strconv.Itoa(math.MaxInt)}, want: "RST-0003"},
		{name: "Only largest int", ids: []string{TrackingIDPrefix + strconv.Itoa(math.MaxInt)}, want: "RST-0001"},
		{name: "Past largest int", ids: []string{"RST-99999999999999999999", "RST-0007"}, want: "RST-0008"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var shipments []Shipment
			for _, id := range tt.ids {
				shipments = append(shipments, Shipment{TrackingID: id})
			}
			got := NextTrackingIDAfter(shipments)
			if got != tt.want {
				t.Errorf("NextTrackingIDAfter() = %s, want %s", got, tt.want)
			}
			if _, ok := ParseTrackingID(got); !ok {
				t.Errorf("ParseTrackingID(%s) rejected a generated id", got)
			}
		})
	}
}

func TestNextTrackingID_CollidesAfterDeletion(t *testing.T) {
	remaining := []Shipment{{TrackingID: "RST-0001"}, {TrackingID: "RST-0003"}}
	if got := NextTrackingID(len(remaining)); IndexOf(remaining, got) == -1 {
		t.Errorf("NextTrackingID(%d) = %s, expected collision with a remaining record", len(remaining), got)
	}
}

func TestShipment_Matches(t *testing.T) {
	s := validShipment()
	s.Status = StatusInTransit
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"rst-0001", true},
		{"VIKRAM", true},
		{"in tran", true},
		{"asha", false},
		{"560001", false},
	}
	for _, tt := range tests {
		if got := s.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterAndIndexOf(t *testing.T) {
	a := validShipment()
	b := validShipment()
	b.TrackingID = "RST-0002"
	b.ReceiverName = "Meera"
	all := []Shipment{a, b}

	got := Filter(all, "meera")
	if len(got) != 1 || got[0].TrackingID != "RST-0002" {
		t.Errorf("Filter() = %v, want only RST-0002", got)
	}
	if i := IndexOf(all, "RST-0002"); i != 1 {
		t.Errorf("IndexOf() = %d, want 1", i)
	}
	if i := IndexOf(all, "RST-9999"); i != -1 {
		t.Errorf("IndexOf() = %d, want -1", i)
	}
}

func TestShipment_UnmarshalLegacyFormValues(t *testing.T) {
	blob := `{"senderName":"A","receiverName":"B","receiverAddress":"C","deliveryPincode":"560001","packageWeight":"1.5","shipmentType":"Standard","status":"Booked","trackingId":"RST-0001","createdDate":"1/2/2026"}`
	var s Shipment
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.PackageWeight != 1.5 || s.DeliveryPincode != "560001" || s.TrackingID != "RST-0001" {
		t.Errorf("Unmarshal() = %+v", s)
	}

	numeric := `{"deliveryPincode":560001,"packageWeight":2}`
	var n Shipment
	if err := json.Unmarshal([]byte(numeric), &n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if n.PackageWeight != 2 || n.DeliveryPincode != "560001" {
		t.Errorf("Unmarshal() = %+v", n)
	}

	var bad Shipment
	if err := json.Unmarshal([]byte(`{"packageWeight":"heavy"}`), &bad); err == nil {
		t.Errorf("Unmarshal() expected error for non-numeric weight")
	}
}

func TestApplyDefaultsAndDate(t *testing.T) {
	var s Shipment
	s.ApplyDefaults()
	if s.ShipmentType != ShipmentTypeStandard || s.Status != StatusBooked {
		t.Errorf("ApplyDefaults() = %+v", s)
	}
	d := time.Date(2026, time.October, 5, 14, 0, 0, 0, time.UTC)
	if got := FormatCreatedDate(d); got != "10/5/2026" {
		t.Errorf("FormatCreatedDate() = %s, want 10/5/2026", got)
	}
}
