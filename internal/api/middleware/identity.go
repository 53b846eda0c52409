package middleware

import (
	"context"
	"net/http"

	"github.com/mpfeif/caddiebook/internal/api/apierr"
	"github.com/mpfeif/caddiebook/internal/model"
)

type contextKey string

const profileContextKey contextKey = "profile"

// ProfileHeader carries the caller's profile id. Authentication happens
// upstream (reverse proxy or gateway); by the time a request reaches
// this service the header is trusted.
const ProfileHeader = "X-Profile-ID"

// Identity extracts the caller's profile id into the request context
// when present. Routes that require a caller use RequireProfile.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := r.Header.Get(ProfileHeader); id != "" {
				ctx := context.WithValue(r.Context(), profileContextKey, model.ProfileID(id))
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireProfile rejects requests that carry no profile id
func RequireProfile() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetProfileID(r.Context()); !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetProfileID returns the caller's profile id from the context
func GetProfileID(ctx context.Context) (model.ProfileID, bool) {
	id, ok := ctx.Value(profileContextKey).(model.ProfileID)
	return id, ok
}

// MustGetProfileID returns the caller's profile id, panicking if absent.
// Only call behind RequireProfile.
func MustGetProfileID(ctx context.Context) model.ProfileID {
	id, ok := GetProfileID(ctx)
	if !ok {
		panic("no profile id in context")
	}
	return id
}
