package auth

import (
	"net/http"
	"time"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

const (
	StaffRefreshCookie    = "refreshToken"
	CustomerRefreshCookie = "customerRefreshToken"
)

// CookieName returns the refresh cookie name for a principal kind.
func CookieName(kind domain.PrincipalKind) string {
	if kind == domain.PrincipalCustomer {
		return CustomerRefreshCookie
	}
	return StaffRefreshCookie
}

// CookiePolicy renders the refresh-token Set-Cookie header for one principal kind.
type CookiePolicy struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// NewCookiePolicy builds the policy for a principal kind.
func NewCookiePolicy(kind domain.PrincipalKind, ttl time.Duration, secure bool) CookiePolicy {
	return CookiePolicy{Name: CookieName(kind), TTL: ttl, Secure: secure}
}

// Issue returns a Set-Cookie value carrying the refresh token.
func (p CookiePolicy) Issue(token string) string {
	return p.render(token, int(p.TTL/time.Second))
}

// Clear returns a Set-Cookie value that expires the cookie immediately.
func (p CookiePolicy) Clear() string {
	return p.render("", -1)
}

func (p CookiePolicy) render(value string, maxAge int) string {
	cookie := &http.Cookie{
		Name:     p.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
	return cookie.String()
}
