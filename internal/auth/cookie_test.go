package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

func TestCookiePolicy_Issue(t *testing.T) {
	policy := NewCookiePolicy(domain.PrincipalStaff, 30*24*time.Hour, false)

	header := policy.Issue("token-value")
	assert.Contains(t, header, "refreshToken=token-value")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=2592000")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Strict")
	assert.NotContains(t, header, "Secure")

	parsed, err := http.ParseSetCookie(header)
	require.NoError(t, err)
	assert.Equal(t, "token-value", parsed.Value)
	assert.True(t, parsed.HttpOnly)
}

func TestCookiePolicy_CustomerNameAndSecure(t *testing.T) {
	policy := NewCookiePolicy(domain.PrincipalCustomer, 7*24*time.Hour, true)

	header := policy.Issue("v")
	assert.Contains(t, header, "customerRefreshToken=v")
	assert.Contains(t, header, "Max-Age=604800")
	assert.Contains(t, header, "Secure")
}

func TestCookiePolicy_Clear(t *testing.T) {
	policy := NewCookiePolicy(domain.PrincipalCustomer, time.Hour, false)

	header := policy.Clear()
	assert.Contains(t, header, "customerRefreshToken=")
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "HttpOnly")
}

func TestCookieName(t *testing.T) {
	assert.Equal(t, StaffRefreshCookie, CookieName(domain.PrincipalStaff))
	assert.Equal(t, CustomerRefreshCookie, CookieName(domain.PrincipalCustomer))
}
