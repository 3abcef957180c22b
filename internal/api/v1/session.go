package v1

import (
	"net/http"

	"github.com/google/uuid"
)

// Anonymous sessions ride on a browser cookie. The cookie lifetime
// mirrors the favorites bucket TTL.
const (
	sessionCookie = "mf.sid"
	sessionMaxAge = 7 * 24 * 60 * 60 // seconds
)

// sessionID returns the caller's anonymous session id, issuing a fresh
// cookie when the request carries none. The id is passed explicitly to
// the favorites store; it is never stashed in ambient state.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
