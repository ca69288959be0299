package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	HomeAirport string `json:"home_airport"`
}

type authResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	User    struct {
		Email       string `json:"email"`
		Name        string `json:"name"`
		Airport     string `json:"airport"`
		AirportName string `json:"airport_name"`
	} `json:"user"`
}

// Login authenticates the operator and returns a new session for them
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return models.Session{}, err
	}
	return resp.session(http.StatusUnauthorized, "Invalid login")
}

// Signup registers a new operator and returns a session for them
func (c *Client) Signup(ctx context.Context, req SignupRequest) (models.Session, error) {
	var resp authResponse
	if err := c.post(ctx, "/signup", req, &resp); err != nil {
		return models.Session{}, err
	}
	return resp.session(http.StatusBadRequest, "Signup failed")
}

func (r authResponse) session(failStatus int, failMsg string) (models.Session, error) {
	if !r.Success {
		msg := r.Error
		if msg == "" {
			msg = failMsg
		}
		return models.Session{}, &Error{Status: failStatus, Message: msg}
	}
	return models.Session{
		ID:              uuid.New().String(),
		Email:           r.User.Email,
		Name:            r.User.Name,
		HomeAirport:     r.User.Airport,
		HomeAirportName: r.User.AirportName,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
