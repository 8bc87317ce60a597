package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
)

// Decode extracts the claims of a JWT without checking its signature.
// Every failure wraps ErrInvalidToken.
func Decode(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, fmt.Errorf("%w: empty token", apperrors.ErrInvalidToken)
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: error extracting claims", apperrors.ErrInvalidToken)
	}

	userID, err := userIDClaim(claims)
	if err != nil {
		return nil, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: exp: %v", apperrors.ErrInvalidToken, err)
	}
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("%w: iat: %v", apperrors.ErrInvalidToken, err)
	}

	decoded := &Claims{UserID: userID}
	if exp != nil {
		decoded.ExpiresAt = exp.Time
	}
	if iat != nil {
		decoded.IssuedAt = iat.Time
	}
	return decoded, nil
}

// userIDClaim reads "id" (the backend stores numeric ids) and falls back to
// the registered "sub" claim.
func userIDClaim(claims jwtlib.MapClaims) (string, error) {
	raw, ok := claims["id"]
	if !ok {
		raw, ok = claims["sub"]
	}
	if !ok {
		return "", fmt.Errorf("%w: missing id claim", apperrors.ErrInvalidToken)
	}

	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			break
		}
		return v, nil
	case float64:
		// float64(MaxInt64) rounds up to 2^63, which no longer fits.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			break
		}
		return strconv.FormatInt(int64(v), 10), nil
	}
	return "", fmt.Errorf("%w: unusable id claim %v", apperrors.ErrInvalidToken, raw)
}
