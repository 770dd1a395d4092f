package auth

import "strings"

// ExtractBearer returns the token from an "Authorization: Bearer <token>" value.
// It reports false when the header is absent or not a bearer credential.
func ExtractBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
