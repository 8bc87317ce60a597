package api

import (
	"context"
	"net/http"

	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
)

// Enroll signs the bearer up for the tournament.
func (c *Client) Enroll(ctx context.Context, bearer string) error {
	return c.do(ctx, call{
		method:     http.MethodPost,
		path:       RouteEnroll,
		bearer:     bearer,
		defaultErr: "enrollment failed",
	})
}

// BecomeOrganizer grants the bearer the organizer role.
func (c *Client) BecomeOrganizer(ctx context.Context, bearer string) error {
	return c.do(ctx, call{
		method:     http.MethodPost,
		path:       RouteBecomeOrganizer,
		bearer:     bearer,
		defaultErr: "failed to become organizer",
	})
}

// Participants lists enrolled players. Players who are not enrolled get 403.
func (c *Client) Participants(ctx context.Context, bearer string) ([]tournament.Participant, error) {
	out := []tournament.Participant{}
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       RouteParticipants,
		bearer:     bearer,
		out:        &out,
		defaultErr: "failed to load participants",
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Matches lists every match, played or not.
func (c *Client) Matches(ctx context.Context, bearer string) ([]tournament.Match, error) {
	out := []tournament.Match{}
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       RouteMatches,
		bearer:     bearer,
		out:        &out,
		defaultErr: "failed to load matches",
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMatch schedules a match, optionally with its result.
func (c *Client) CreateMatch(ctx context.Context, bearer string, in tournament.MatchInput) error {
	return c.do(ctx, call{
		method:     http.MethodPost,
		path:       RouteMatches,
		bearer:     bearer,
		body:       in.Normalized(),
		defaultErr: "failed to create match",
	})
}

// UpdateMatch replaces the players, date or result of a match.
func (c *Client) UpdateMatch(ctx context.Context, bearer string, id users.ID, in tournament.MatchInput) error {
	return c.do(ctx, call{
		method:     http.MethodPut,
		path:       pathWithID(RouteMatches, id.String()),
		bearer:     bearer,
		body:       in.Normalized(),
		defaultErr: "failed to update match",
	})
}

func (c *Client) DeleteMatch(ctx context.Context, bearer string, id users.ID) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       pathWithID(RouteMatches, id.String()),
		bearer:     bearer,
		defaultErr: "failed to delete match",
	})
}

// Standings returns the ranking as computed by the server.
func (c *Client) Standings(ctx context.Context, bearer string) ([]tournament.Standing, error) {
	out := []tournament.Standing{}
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       RouteStandings,
		bearer:     bearer,
		out:        &out,
		defaultErr: "failed to load standings",
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
