package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "routegate"
	DisplayName       = "RouteGate"
	KeyringSessionKey = "session"
	DefaultConfigDir  = "~/.config/routegate"
	DefaultConfigFile = "~/.config/routegate/config.json"
	SessionDBName     = "session.db"
	Version           = "v0.3.0"

	// DefaultAPIURL matches the development address of the RouteGate API service
	DefaultAPIURL  = "http://localhost:5000"
	DefaultTimeout = 15 * time.Second

	// Session store backends
	SessionStoreKeyring = "keyring"
	SessionStoreFile    = "file"

	// ForecastDays is the horizon of the destination forecast and the upcoming flights window
	ForecastDays = 14
	// AllFlightsDays is the window served by the all-flights listing
	AllFlightsDays = 20

	// User-facing messages
	MsgSelectFlight      = "Please select a flight"
	MsgSelectDestination = "Please select a destination"
	MsgLoadFailed        = "Failed to load data"
	MsgCalculationFailed = "Calculation failed"
	MsgUnexpectedError   = "unexpected error"
	MsgSevereWeather     = "WARNING - SEVERE WEATHER DETECTED"
	MsgInvalidLogin      = "Invalid email or password"
	MsgSignupFailed      = "Signup failed"
	MsgAllFieldsRequired = "All fields are required"
)

// Session States
const (
	StateLogin SessionState = iota
	StateSignup
	StateCalculator
	StateFlights
)
