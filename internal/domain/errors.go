package domain

import "errors"

var (
	ErrNotFound            = errors.New("shipment not found")
	ErrDuplicateTrackingID = errors.New("tracking id already exists")
)
