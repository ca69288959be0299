package api

import (
	"context"
	"net/url"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

// Directory supplies reference data for the assessment inputs
type Directory interface {
	ListAirports(ctx context.Context) ([]models.Airport, error)
	ListUpcomingFlights(ctx context.Context, origin string) ([]models.UpcomingFlight, error)
}

// Calculator produces feasibility verdicts
type Calculator interface {
	CalculateFlight(ctx context.Context, flightID models.FlightID) (*models.FlightAssessment, error)
	CalculateDestination(ctx context.Context, origin, destination string) (*models.DestinationAssessment, error)
}

// Service is everything the assessment workflow needs from the API
type Service interface {
	Directory
	Calculator
}

// Authenticator signs operators in and registers new ones
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Signup(ctx context.Context, req SignupRequest) (models.Session, error)
}

// Schedule lists every flight from an origin
type Schedule interface {
	ListAllFlights(ctx context.Context, origin string) ([]models.UpcomingFlight, error)
}

// Backend is the whole API as used by the terminal UI
type Backend interface {
	Service
	Authenticator
	Schedule
}

var _ Backend = (*Client)(nil)

func (c *Client) ListAirports(ctx context.Context) ([]models.Airport, error) {
	var airports []models.Airport
	if err := c.get(ctx, "/airports", nil, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

// ListUpcomingFlights returns departures from origin over the next two weeks
func (c *Client) ListUpcomingFlights(ctx context.Context, origin string) ([]models.UpcomingFlight, error) {
	var flights []models.UpcomingFlight
	if err := c.get(ctx, "/upcoming-flights", url.Values{"origin": {origin}}, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// ListAllFlights returns every scheduled flight from origin in the listing window
func (c *Client) ListAllFlights(ctx context.Context, origin string) ([]models.UpcomingFlight, error) {
	var flights []models.UpcomingFlight
	if err := c.get(ctx, "/all-flights", url.Values{"origin_airport": {origin}}, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *Client) CalculateFlight(ctx context.Context, flightID models.FlightID) (*models.FlightAssessment, error) {
	var result models.FlightAssessment
	body := map[string]any{"flight_id": flightID}
	if err := c.post(ctx, "/calculate-flight", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CalculateDestination(ctx context.Context, origin, destination string) (*models.DestinationAssessment, error) {
	var result models.DestinationAssessment
	body := map[string]string{"origin": origin, "destination": destination}
	if err := c.post(ctx, "/calculate-destination", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
