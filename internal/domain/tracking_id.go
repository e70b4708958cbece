package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const TrackingIDPrefix = "RST-"

// NextTrackingID derives the ID from the collection size. After a deletion the
// result can equal an ID that is still in use.
func NextTrackingID(existingCount int) string {
	return fmt.Sprintf("%s%04d", TrackingIDPrefix, existingCount+1)
}

// NextTrackingIDAfter returns one past the highest sequence number in use, so
// deleted IDs are never handed out again while a higher one exists. An ID at
// math.MaxInt has no successor and is skipped.
func NextTrackingIDAfter(shipments []Shipment) string {
	highest := 0
	for _, s := range shipments {
		if n, ok := ParseTrackingID(s.TrackingID); ok && n > highest && n < math.MaxInt {
			highest = n
		}
	}
	return NextTrackingID(highest)
}

// ParseTrackingID extracts the sequence number of an RST- ID.
func ParseTrackingID(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, TrackingIDPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
