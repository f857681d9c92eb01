package myhttp

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ashim-08/Nepali-Thali/lib/myuuid"
)

const (
	SessionCookieName = "cart_session"
	sessionMaxAge     = 30 * 24 * time.Hour
)

// SessionUID returns the cart session of the caller and issues a fresh session cookie when absent.
// Only sessions that were issued as an uuid are accepted.
func SessionUID(w http.ResponseWriter, r *http.Request, uuider myuuid.UUIDer) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		_, err = uuid.Parse(cookie.Value)
		if err == nil {
			return cookie.Value
		}
	}

	sessionUID := uuider.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionUID,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionUID
}
