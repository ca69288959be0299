package assessment

import (
	"context"
	"fmt"
	"sync"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

// fakeService records calls and returns canned responses
type fakeService struct {
	mu sync.Mutex

	airports    []models.Airport
	airportsErr error
	flights     []models.UpcomingFlight
	flightsErr  error

	flightResult *models.FlightAssessment
	destResult   *models.DestinationAssessment
	calcErr      error

	// hooks run inside the call before it returns
	onAirports func()
	onFlights  func()

	airportCalls int
	flightCalls  []string
	calcCalls    []string
}

func (f *fakeService) ListAirports(ctx context.Context) ([]models.Airport, error) {
	f.mu.Lock()
	f.airportCalls++
	hook := f.onAirports
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.airports, f.airportsErr
}

func (f *fakeService) ListUpcomingFlights(ctx context.Context, origin string) ([]models.UpcomingFlight, error) {
	f.mu.Lock()
	f.flightCalls = append(f.flightCalls, origin)
	hook := f.onFlights
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.flights, f.flightsErr
}

func (f *fakeService) CalculateFlight(ctx context.Context, id models.FlightID) (*models.FlightAssessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calcCalls = append(f.calcCalls, "flight:"+string(id))
	if f.calcErr != nil {
		return nil, f.calcErr
	}
	return f.flightResult, nil
}

func (f *fakeService) CalculateDestination(ctx context.Context, origin, dest string) (*models.DestinationAssessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calcCalls = append(f.calcCalls, "destination:"+origin+"-"+dest)
	if f.calcErr != nil {
		return nil, f.calcErr
	}
	return f.destResult, nil
}

func testSession() models.Session {
	return models.Session{
		ID:              "s-1",
		Email:           "demo@routegate.com",
		HomeAirport:     "BNE",
		HomeAirportName: "Brisbane Airport",
	}
}

func testAirports() []models.Airport {
	return []models.Airport{
		{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia"},
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
		{Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "Australia"},
	}
}

func testFlights() []models.UpcomingFlight {
	return []models.UpcomingFlight{
		{FlightID: "101", FlightNumber: "RG101", Origin: "BNE", Destination: "SYD", DepartureDate: "2026-10-18", DepartureTime: "08:30:00"},
		{FlightID: "102", FlightNumber: "RG202", Origin: "BNE", Destination: "JFK", DepartureDate: "2026-10-20", DepartureTime: "21:15:00"},
	}
}

func okForecast(days int) *models.DestinationAssessment {
	res := &models.DestinationAssessment{
		Origin:      models.AirportRef{Code: "BNE", Name: "Brisbane Airport"},
		Destination: models.AirportRef{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
	}
	for i := 0; i < days; i++ {
		res.Forecast = append(res.Forecast, models.ForecastEntry{
			Date:   fmt.Sprintf("2026-10-%02d", 18+i%14),
			Status: models.RecommendationOK,
			Reason: "Favorable conditions",
		})
	}
	return res
}
