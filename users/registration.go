package users

import (
	"fmt"
	"net/mail"
	"strings"

	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
)

// Registration is the body of POST /api/utenti/register.
type Registration struct {
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate checks the fields the sign-up form marks as required. Password
// policy is enforced by the server.
func (r Registration) Validate() error {
	switch {
	case strings.TrimSpace(r.FirstName) == "":
		return fmt.Errorf("%w: first name is required", apperrors.ErrInvalidRequest)
	case strings.TrimSpace(r.LastName) == "":
		return fmt.Errorf("%w: last name is required", apperrors.ErrInvalidRequest)
	case r.Password == "":
		return fmt.Errorf("%w: password is required", apperrors.ErrInvalidRequest)
	}
	return ValidateEmail(r.Email)
}

// Credentials is the body of POST /api/utenti/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("%w: password is required", apperrors.ErrInvalidRequest)
	}
	return ValidateEmail(c.Email)
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrInvalidRequest)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email %q", apperrors.ErrInvalidRequest, email)
	}
	return nil
}
