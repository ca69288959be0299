package constants

const (
	// DateFormat is the date format used by the RouteGate API (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the departure/arrival time format used by the RouteGate API (HH:MM:SS)
	TimeFormat = "15:04:05"

	// ShortTimeFormat is used when displaying times (HH:MM)
	ShortTimeFormat = "15:04"
)
