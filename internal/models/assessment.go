package models

// Mode selects how feasibility is assessed
type Mode string

const (
	ModeDestination Mode = "destination"
	ModeFlight      Mode = "flight"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeDestination || m == ModeFlight
}

// Recommendation is the verdict produced by the calculation service,
// for a single flight or a single forecast day
type Recommendation string

const (
	RecommendationOK         Recommendation = "OK"
	RecommendationReschedule Recommendation = "RESCHEDULE"
	RecommendationCancel     Recommendation = "CANCEL"
)

type WeatherSnapshot struct {
	Temp          float64 `json:"temp"`
	WindSpeed     float64 `json:"wind_speed"`
	WindGusts     float64 `json:"wind_gusts"`
	Precipitation float64 `json:"precipitation"`
}

type FlightDetails struct {
	FlightNumber       string `json:"flight_number"`
	Origin             string `json:"origin"`
	OriginName         string `json:"origin_name"`
	OriginCity         string `json:"origin_city"`
	Destination        string `json:"destination"`
	DestinationName    string `json:"destination_name"`
	DestinationCity    string `json:"destination_city"`
	DestinationCountry string `json:"destination_country"`
	DepartureDate      string `json:"departure_date"`
	DepartureTime      string `json:"departure_time"`
	ArrivalDate        string `json:"arrival_date"`
	ArrivalTime        string `json:"arrival_time"`
}

type ForecastEntry struct {
	Date       string         `json:"date"`
	Status     Recommendation `json:"status"`
	OriginWind float64        `json:"origin_wind"`
	OriginRain float64        `json:"origin_rain"`
	DestWind   float64        `json:"dest_wind"`
	DestRain   float64        `json:"dest_rain"`
	Reason     string         `json:"reason"`
}

type AirportRef struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// AssessmentResult is implemented by *FlightAssessment and *DestinationAssessment only
type AssessmentResult interface {
	Mode() Mode
	isAssessmentResult()
}

// FlightAssessment is the result of assessing one scheduled flight
type FlightAssessment struct {
	Flight         FlightDetails   `json:"flight"`
	Recommendation Recommendation  `json:"recommendation"`
	Reason         string          `json:"reason"`
	OriginWeather  WeatherSnapshot `json:"origin_weather"`
	DestWeather    WeatherSnapshot `json:"dest_weather"`
}

func (*FlightAssessment) Mode() Mode          { return ModeFlight }
func (*FlightAssessment) isAssessmentResult() {}

// DestinationAssessment is the day-by-day forecast for a route.
// Forecast keeps the order sent by the service.
type DestinationAssessment struct {
	Origin      AirportRef      `json:"origin"`
	Destination AirportRef      `json:"destination"`
	Forecast    []ForecastEntry `json:"forecast"`
}

func (*DestinationAssessment) Mode() Mode          { return ModeDestination }
func (*DestinationAssessment) isAssessmentResult() {}
