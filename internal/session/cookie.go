package session

import (
	"net/http"
)

// CookieName is the cookie carrying the session token.
const CookieName = "access_token"

// CookieSettings are the transport attributes of the session cookie.
// Secure and SameSite are deployment configuration: a cross-site frontend
// needs SameSite=None with Secure set.
type CookieSettings struct {
	Secure   bool
	SameSite http.SameSite
}

// SetCookie attaches the session token to the response.
func SetCookie(w http.ResponseWriter, token string, settings CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: settings.SameSite,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, settings CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: settings.SameSite,
	})
}
