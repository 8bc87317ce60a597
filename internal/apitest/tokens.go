package apitest

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// tokenCreator signs and verifies the HS256 tokens the backend hands out.
type tokenCreator struct {
	secret []byte
	expiry time.Duration
}

func newTokenCreator(secret []byte, expiry time.Duration) *tokenCreator {
	return &tokenCreator{secret: secret, expiry: expiry}
}

func (c *tokenCreator) create(userID int64, email string) (string, error) {
	claims := jwtlib.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   NowTimeFunc().Unix(),
		"exp":   NowTimeFunc().Add(c.expiry).Unix(),
		"jti":   uuid.New().String(),
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signed, nil
}

func (c *tokenCreator) verify(rawToken string) (int64, error) {
	token, err := jwtlib.Parse(rawToken, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return 0, errors.New("error extracting claims from token")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("token missing id claim")
	}
	return int64(id), nil
}

// TokenFor signs a valid token for userID without going through login.
func (s *Server) TokenFor(userID int64) string {
	u, _ := s.data.user(userID)
	token, err := s.tokens.create(userID, u.Email)
	if err != nil {
		panic(err)
	}
	return token
}
