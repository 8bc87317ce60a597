package apitest

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyUserID stores the authenticated user ID
const ContextKeyUserID ContextKey = "user_id"

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// RequireAuth validates the bearer token and injects the caller's id.
func (s *Server) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Token mancante")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			writeError(w, http.StatusUnauthorized, "Formato token non valido")
			return
		}

		userID, err := s.tokens.verify(parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Token non valido")
			return
		}
		if _, ok := s.data.user(userID); !ok {
			writeError(w, http.StatusUnauthorized, "Utente non trovato")
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
		next(w, r.WithContext(ctx))
	}
}

// RequireEnrolled rejects callers who have not joined the tournament.
func (s *Server) RequireEnrolled(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.data.user(callerID(r))
		if !ok || !u.Enrolled {
			writeError(w, http.StatusForbidden, "Devi essere iscritto al torneo")
			return
		}
		next(w, r)
	}
}

// RequireOrganizer rejects callers without the organizer role.
func (s *Server) RequireOrganizer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.data.user(callerID(r))
		if !ok || !u.Organizer {
			writeError(w, http.StatusForbidden, "Solo gli organizzatori possono gestire gli incontri")
			return
		}
		next(w, r)
	}
}

func callerID(r *http.Request) int64 {
	id, _ := r.Context().Value(ContextKeyUserID).(int64)
	return id
}
