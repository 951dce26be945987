package booking

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/mr-tron/base58"
)

const (
	// ReferencePrefix is the prefix for all booking references
	ReferencePrefix = "EVT_"

	referenceLength = 12
)

// EventBooking is an event booking request. It is written once to the
// booking-log worksheet and never updated or deleted by this system.
type EventBooking struct {
	EventID      string `json:"eventId"`
	EventName    string `json:"eventName" binding:"required"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Attendees    int    `json:"attendees"`
	Organizer    string `json:"organizer" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber"`
}

// GenerateReference creates a short booking reference for the log row and
// the confirmation email.
func GenerateReference() (string, error) {
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	hash := sha256.Sum256(randomBytes)
	encoded := base58.Encode(hash[:])

	return ReferencePrefix + encoded[:referenceLength], nil
}

// formatUSDate renders a date as MM/DD/YYYY for the staff-facing sheet and
// email, matching how the booking log has always been filled in. Dates that
// fail to parse pass through unchanged.
func formatUSDate(s string) string {
	if s == "" {
		return s
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return s
}

// displayName folds the event id into the staff-facing event name so manual
// follow-up can find the event without another lookup.
func displayName(b EventBooking) string {
	if b.EventID == "" {
		return b.EventName
	}
	return fmt.Sprintf("%s (%s)", b.EventName, b.EventID)
}
