package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 5*time.Second)
}

func TestListAirports(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/airports" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		if got := r.Header.Get("User-Agent"); got != "routegate/v0.3.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte(`[{"code":"BNE","name":"Brisbane Airport","city":"Brisbane","country":"Australia","lat":-27.38,"lng":153.11},
			{"code":"JFK","name":"John F. Kennedy International","city":"New York","country":"USA"}]`))
	})

	airports, err := c.ListAirports(context.Background())
	if err != nil {
		t.Fatalf("ListAirports() error = %v", err)
	}
	if len(airports) != 2 {
		t.Fatalf("len(airports) = %d, want 2", len(airports))
	}
	if airports[0].Code != "BNE" || airports[0].City != "Brisbane" {
		t.Errorf("airports[0] = %+v", airports[0])
	}
}

func TestListUpcomingFlights(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upcoming-flights" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("origin"); got != "BNE" {
			t.Errorf("origin = %q, want BNE", got)
		}
		w.Write([]byte(`[{"flight_id":42,"flight_number":"RG101","origin_airport":"BNE","destination_airport":"SYD",
			"departure_date":"2026-10-18","departure_time":"08:30:00"}]`))
	})

	flights, err := c.ListUpcomingFlights(context.Background(), "BNE")
	if err != nil {
		t.Fatalf("ListUpcomingFlights() error = %v", err)
	}
	if len(flights) != 1 {
		t.Fatalf("len(flights) = %d, want 1", len(flights))
	}
	if flights[0].FlightID != "42" {
		t.Errorf("FlightID = %q, want 42", flights[0].FlightID)
	}
}

func TestListAllFlightsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("origin_airport"); got != "BNE" {
			t.Errorf("origin_airport = %q, want BNE", got)
		}
		w.Write([]byte(`[]`))
	})

	flights, err := c.ListAllFlights(context.Background(), "BNE")
	if err != nil {
		t.Fatalf("ListAllFlights() error = %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("len(flights) = %d, want 0", len(flights))
	}
}

func TestCalculateFlight(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calculate-flight" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if string(body["flight_id"]) != "42" {
			t.Errorf("flight_id = %s, want numeric 42", body["flight_id"])
		}
		w.Write([]byte(`{"flight":{"flight_number":"RG101","origin":"BNE","destination":"SYD"},
			"recommendation":"RESCHEDULE","reason":"Severe wind gusts at Sydney",
			"origin_weather":{"temp":24.1,"wind_speed":20,"wind_gusts":35,"precipitation":0.4},
			"dest_weather":{"temp":19.5,"wind_speed":40,"wind_gusts":70,"precipitation":12.2}}`))
	})

	res, err := c.CalculateFlight(context.Background(), "42")
	if err != nil {
		t.Fatalf("CalculateFlight() error = %v", err)
	}
	if res.Recommendation != models.RecommendationReschedule {
		t.Errorf("Recommendation = %q", res.Recommendation)
	}
	if res.DestWeather.WindGusts != 70 {
		t.Errorf("DestWeather.WindGusts = %v, want 70", res.DestWeather.WindGusts)
	}
}

func TestCalculateDestinationKeepsForecastOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body["origin"] != "BNE" || body["destination"] != "JFK" {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"destination":{"code":"JFK","name":"JFK Intl","city":"New York","country":"USA"},
			"forecast":[{"date":"2026-10-19","status":"OK"},{"date":"2026-10-18","status":"CANCEL"}]}`))
	})

	res, err := c.CalculateDestination(context.Background(), "BNE", "JFK")
	if err != nil {
		t.Fatalf("CalculateDestination() error = %v", err)
	}
	if len(res.Forecast) != 2 || res.Forecast[0].Date != "2026-10-19" || res.Forecast[1].Status != models.RecommendationCancel {
		t.Errorf("Forecast = %+v", res.Forecast)
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "service message",
			status:     http.StatusNotFound,
			body:       `{"error":"Flight not found"}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Flight not found",
		},
		{
			name:       "no body",
			status:     http.StatusInternalServerError,
			body:       ``,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "html body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Bad Gateway",
		},
		{
			name:       "malformed success",
			status:     http.StatusOK,
			body:       `{"flight":`,
			wantStatus: http.StatusOK,
			wantMsg:    "malformed response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.CalculateFlight(context.Background(), "1")
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *api.Error", err)
			}
			if apiErr.Status != tt.wantStatus || apiErr.Message != tt.wantMsg {
				t.Errorf("error = {%d %q}, want {%d %q}", apiErr.Status, apiErr.Message, tt.wantStatus, tt.wantMsg)
			}
			if Message(err) != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", Message(err), tt.wantMsg)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).ListAirports(context.Background())
	if err == nil {
		t.Fatal("ListAirports() against a closed server should fail")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an *api.Error: %v", err)
	}
	if Message(err) == "" {
		t.Error("Message() of a transport error should not be empty")
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"user":{"email":"demo@routegate.com","name":"Demo User","airport":"BNE","airport_name":"Brisbane Airport"}}`))
		})

		s, err := c.Login(context.Background(), "demo@routegate.com", "demo123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if s.ID == "" || s.CreatedAt.IsZero() {
			t.Error("Login() should mint a session id and timestamp")
		}
		if s.HomeAirport != "BNE" || s.HomeAirportName != "Brisbane Airport" || s.Name != "Demo User" {
			t.Errorf("session = %+v", s)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Invalid login"}`))
		})

		_, err := c.Login(context.Background(), "demo@routegate.com", "wrong")
		var apiErr *Error
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
			t.Errorf("Login() error = %v, want 401 *api.Error", err)
		}
	})
}

func TestSignup(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if req.HomeAirport != "MEL" || req.FirstName != "Ada" {
			t.Errorf("signup request = %+v", req)
		}
		if req.Email == "taken@routegate.com" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"error":"Email exists"}`))
			return
		}
		w.Write([]byte(`{"success":true,"user":{"email":"ada@routegate.com","name":"Ada Lovelace","airport":"MEL","airport_name":"Melbourne Airport"}}`))
	})

	req := SignupRequest{Email: "ada@routegate.com", Password: "pw", FirstName: "Ada", LastName: "Lovelace", HomeAirport: "MEL"}
	s, err := c.Signup(context.Background(), req)
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if s.HomeAirport != "MEL" {
		t.Errorf("HomeAirport = %q", s.HomeAirport)
	}

	req.Email = "taken@routegate.com"
	_, err = c.Signup(context.Background(), req)
	if Message(err) != "Email exists" {
		t.Errorf("Signup() error message = %q, want %q", Message(err), "Email exists")
	}
}
