package app

import (
	"context"
	"fmt"

	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/internal/utils"
	"github.com/jrsteele09/torneo-pingpong/tournament"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/rs/zerolog/log"
)

// Login signs in with email and password. The profile returned by the
// backend is installed right away.
func (a *App) Login(ctx context.Context, creds users.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	resp, err := a.API.Login(ctx, creds)
	if err != nil {
		return err
	}
	return a.Sessions.Login(ctx, resp.Token, resp.User)
}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context, reg users.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := a.API.Register(ctx, reg); err != nil {
		return err
	}
	return a.Login(ctx, users.Credentials{Email: reg.Email, Password: reg.Password})
}

func (a *App) Logout() {
	a.Sessions.Logout()
}

func (a *App) bearer() (string, error) {
	s := a.Sessions.Snapshot()
	if !s.Authenticated() {
		return "", apperrors.ErrNotAuthenticated
	}
	return s.Token, nil
}

// Enroll joins the tournament and flips the local flag on success.
func (a *App) Enroll(ctx context.Context) error {
	bearer, err := a.bearer()
	if err != nil {
		return err
	}
	if err := a.API.Enroll(ctx, bearer); err != nil {
		return err
	}
	a.Sessions.UpdateProfile(users.ProfileUpdate{Enrolled: utils.Ptr(true)})
	log.Info().Msg("Enrolled in the tournament")
	return nil
}

// BecomeOrganizer takes the organizer role and flips the local flag on
// success.
func (a *App) BecomeOrganizer(ctx context.Context) error {
	bearer, err := a.bearer()
	if err != nil {
		return err
	}
	if err := a.API.BecomeOrganizer(ctx, bearer); err != nil {
		return err
	}
	a.Sessions.UpdateProfile(users.ProfileUpdate{Organizer: utils.Ptr(true)})
	log.Info().Msg("Became tournament organizer")
	return nil
}

func (a *App) Participants(ctx context.Context) ([]tournament.Participant, error) {
	bearer, err := a.bearer()
	if err != nil {
		return nil, err
	}
	return a.API.Participants(ctx, bearer)
}

// Matches lists the matches selected by f.
func (a *App) Matches(ctx context.Context, f tournament.Filter) ([]tournament.Match, error) {
	bearer, err := a.bearer()
	if err != nil {
		return nil, err
	}
	matches, err := a.API.Matches(ctx, bearer)
	if err != nil {
		return nil, err
	}
	return tournament.FilterMatches(matches, f), nil
}

// Match finds one match by id.
func (a *App) Match(ctx context.Context, id users.ID) (tournament.Match, error) {
	matches, err := a.Matches(ctx, tournament.FilterAll)
	if err != nil {
		return tournament.Match{}, err
	}
	for _, m := range matches {
		if m.ID == id {
			return m, nil
		}
	}
	return tournament.Match{}, fmt.Errorf("%w: match %s", apperrors.ErrNotFound, id)
}

// CreateMatch validates in locally before sending it.
func (a *App) CreateMatch(ctx context.Context, in tournament.MatchInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	bearer, err := a.bearer()
	if err != nil {
		return err
	}
	return a.API.CreateMatch(ctx, bearer, in)
}

func (a *App) UpdateMatch(ctx context.Context, id users.ID, in tournament.MatchInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	bearer, err := a.bearer()
	if err != nil {
		return err
	}
	return a.API.UpdateMatch(ctx, bearer, id, in)
}

func (a *App) DeleteMatch(ctx context.Context, id users.ID) error {
	bearer, err := a.bearer()
	if err != nil {
		return err
	}
	return a.API.DeleteMatch(ctx, bearer, id)
}

func (a *App) Standings(ctx context.Context) ([]tournament.Standing, error) {
	bearer, err := a.bearer()
	if err != nil {
		return nil, err
	}
	return a.API.Standings(ctx, bearer)
}
