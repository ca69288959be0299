package models

import (
	"strings"
	"time"
)

// Session is the client-held record of the logged-in operator
type Session struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	HomeAirport     string    `json:"home_airport"`
	HomeAirportName string    `json:"home_airport_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// Valid reports whether the session can be used by protected views.
// A session without a home airport is treated as absent.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.HomeAirport) != ""
}

// HomeLabel returns "CODE - Name", or just the code when the name is unknown
func (s Session) HomeLabel() string {
	if s.HomeAirportName == "" {
		return s.HomeAirport
	}
	return s.HomeAirport + " - " + s.HomeAirportName
}
