package middleware

import (
	"context"
	"net/http"

	"github.com/dalili-app/dalili-backend/internal/session"
)

// CookieName carries the session key between requests.
const CookieName = "dalili_session"

type Middleware struct {
	Sessions *session.Registry
}

func NewMiddleware(reg *session.Registry) *Middleware {
	return &Middleware{Sessions: reg}
}

// context key
type contextKey string

const sessionKey contextKey = "session"

// Session resolves the caller's session from the cookie, minting one
// when the cookie is missing or stale, and attaches it to the request
// context.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var key string
		if c, err := r.Cookie(CookieName); err == nil {
			key = c.Value
		}

		resolved, sess := m.Sessions.GetOrCreate(key)
		if resolved != key {
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    resolved,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// NewContext attaches a session directly, bypassing the cookie
// handshake. Used by handler tests.
func NewContext(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext extracts the session attached by the middleware.
func FromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}
