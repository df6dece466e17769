package domain

import "time"

// Scheduling constants
const (
	// SlotGranularityMinutes is the fixed width of a bookable slot.
	SlotGranularityMinutes = 60
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // reservation payload format
)

// BusinessZone is the fixed civil zone all shop times are expressed in.
// Working hours and appointment times coming from the backend are wall
// clock values in this zone regardless of where the client connects from.
var BusinessZone = time.FixedZone("UTC+3", 3*60*60)

// Business validation constants
const (
	MinServiceQuantity = 1
	MaxClientNameLen   = 255
	MaxEmailLen        = 255
	MaxPhoneLen        = 32
	MaxUsernameLen     = 128
)
