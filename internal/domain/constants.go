package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength     = 100
	MaxEmailLength    = 254
	MaxPhoneLength    = 30
	MaxCommentsLength = 1000
	MaxSubjectLength  = 200
	MaxMessageLength  = 5000
)
