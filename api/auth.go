package api

import (
	"context"
	"net/http"

	"github.com/jrsteele09/torneo-pingpong/users"
)

// LoginResponse is returned by POST /api/utenti/login.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *users.Profile `json:"user,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds users.Credentials) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       RouteLogin,
		body:       creds,
		out:        &out,
		defaultErr: "login failed",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The caller logs in afterwards.
func (c *Client) Register(ctx context.Context, reg users.Registration) error {
	return c.do(ctx, call{
		method:     http.MethodPost,
		path:       RouteRegister,
		body:       reg,
		defaultErr: "registration failed",
	})
}

// GetUser fetches the full profile of userID.
func (c *Client) GetUser(ctx context.Context, bearer string, userID users.ID) (*users.Profile, error) {
	var out users.Profile
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       pathWithID(RouteUsers, userID.String()),
		bearer:     bearer,
		out:        &out,
		defaultErr: "failed to load user profile",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
