package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Airport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// Label returns "CODE - Name" as shown in pickers
func (a Airport) Label() string {
	return fmt.Sprintf("%s - %s", a.Code, a.Name)
}

// FlightID identifies a scheduled flight. The API sends it as a number,
// but it is kept opaque on the client.
type FlightID string

func (id *FlightID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlightID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flight_id: %w", err)
	}
	*id = FlightID(n.String())
	return nil
}

// MarshalJSON sends numeric ids back as numbers
func (id FlightID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UpcomingFlight is a scheduled departure from the home airport
type UpcomingFlight struct {
	FlightID      FlightID `json:"flight_id"`
	FlightNumber  string   `json:"flight_number"`
	Origin        string   `json:"origin_airport"`
	Destination   string   `json:"destination_airport"`
	DepartureDate string   `json:"departure_date"`
	DepartureTime string   `json:"departure_time"`
	ArrivalDate   string   `json:"arrival_date,omitempty"`
	ArrivalTime   string   `json:"arrival_time,omitempty"`
	Status        string   `json:"status,omitempty"`
	AircraftType  string   `json:"aircraft_type,omitempty"`
}

// Label returns "NUMBER - ORIGIN → DEST - DATE TIME" using origin as the departure airport
func (f UpcomingFlight) Label(origin string) string {
	return fmt.Sprintf("%s - %s → %s - %s %s", f.FlightNumber, origin, f.Destination, f.DepartureDate, f.DepartureTime)
}
