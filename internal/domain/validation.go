package domain

import (
	"regexp"
	"sort"
	"strings"
)

const (
	FieldSenderName      = "senderName"
	FieldReceiverName    = "receiverName"
	FieldReceiverAddress = "receiverAddress"
	FieldDeliveryPincode = "deliveryPincode"
	FieldPackageWeight   = "packageWeight"
	FieldShipmentType    = "shipmentType"
	FieldStatus          = "status"
)

var pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// FieldErrors maps a JSON field name to a user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Validate returns an empty map iff every field constraint holds.
func Validate(s Shipment) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(s.SenderName) == "" {
		errs[FieldSenderName] = "Sender name is required"
	}
	if strings.TrimSpace(s.ReceiverName) == "" {
		errs[FieldReceiverName] = "Receiver name is required"
	}
	if strings.TrimSpace(s.ReceiverAddress) == "" {
		errs[FieldReceiverAddress] = "Address is required"
	}
	if !pincodeRegex.MatchString(s.DeliveryPincode) {
		errs[FieldDeliveryPincode] = "Pincode must be 6 digits"
	}
	// NaN fails this comparison too.
	if !(s.PackageWeight > 0) {
		errs[FieldPackageWeight] = "Weight must be greater than 0"
	}
	if !s.ShipmentType.Valid() {
		errs[FieldShipmentType] = "Shipment type must be Express, Standard or Economy"
	}
	if !s.Status.Valid() {
		errs[FieldStatus] = "Status must be Booked, In Transit or Delivered"
	}
	return errs
}
