package auth

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	CookieUser  = "user_session"
	CookieAdmin = "admin_session"
)

// ParseCookies parses a raw Cookie header of the form "k1=v1; k2=v2".
// Values are URL-decoded; pairs without an equals sign are skipped, not
// fatal.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		cookies[strings.TrimSpace(key)] = value
	}
	return cookies
}

// SetSessionCookie places a session token on the response.
func SetSessionCookie(w http.ResponseWriter, name, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires a session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
