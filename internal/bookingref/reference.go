// Package bookingref derives the deterministic booking reference token used
// to collapse duplicate reservation submissions for the same truck/load pair.
package bookingref

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const prefix = "BKG-"

// Derive returns the reference token for a truck/load pair. Identical inputs
// always produce the identical token, across restarts. The digest is
// truncated to 8 hex characters; the unique constraint on
// bookings.booking_reference_id is the collision backstop.
func Derive(truckID, loadID string) string {
	sum := sha256.Sum256([]byte(truckID + "_" + loadID))
	return prefix + strings.ToUpper(hex.EncodeToString(sum[:4]))
}
