package flights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

type fakeSchedule struct {
	flights []models.UpcomingFlight
	err     error
	origins []string
}

func (f *fakeSchedule) ListAllFlights(ctx context.Context, origin string) ([]models.UpcomingFlight, error) {
	f.origins = append(f.origins, origin)
	return f.flights, f.err
}

func session() models.Session {
	return models.Session{HomeAirport: "BNE", HomeAirportName: "Brisbane Airport"}
}

func TestLoadFlights(t *testing.T) {
	sched := &fakeSchedule{flights: []models.UpcomingFlight{
		{FlightNumber: "RG101", Origin: "BNE", Destination: "SYD", Status: "scheduled"},
		{FlightNumber: "RG102", Origin: "BNE", Destination: "JFK", Status: "cancelled"},
	}}
	m := New(context.Background(), session(), sched, 100, 20)

	if !strings.Contains(m.View(), "Loading flights") {
		t.Error("should show loading state before the listing arrives")
	}

	m, _ = m.Update(m.Init()())
	if len(sched.origins) != 1 || sched.origins[0] != "BNE" {
		t.Errorf("requested origins = %v", sched.origins)
	}
	if len(m.Flights()) != 2 {
		t.Fatalf("flights = %d, want 2", len(m.Flights()))
	}
	view := m.View()
	for _, want := range []string{"Flights from Brisbane Airport", "RG101", "BNE → JFK"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLoadFailure(t *testing.T) {
	m := New(context.Background(), session(), &fakeSchedule{err: errors.New("down")}, 100, 20)
	m, _ = m.Update(m.Init()())

	if !strings.Contains(m.View(), "Failed to load flights") {
		t.Errorf("view = %q", m.View())
	}
}

func TestEmptyListing(t *testing.T) {
	m := New(context.Background(), session(), &fakeSchedule{}, 100, 20)
	m, _ = m.Update(m.Init()())

	if !strings.Contains(m.View(), "No flights found") {
		t.Errorf("view = %q", m.View())
	}
}

func TestIgnoresOtherOrigin(t *testing.T) {
	m := New(context.Background(), session(), &fakeSchedule{}, 100, 20)
	m, _ = m.Update(LoadedMsg{Origin: "SYD", Flights: []models.UpcomingFlight{{FlightNumber: "X1"}}})

	if len(m.Flights()) != 0 {
		t.Error("listing for another origin was applied")
	}
}
