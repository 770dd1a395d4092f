package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

var (
	// ErrInvalidSignature covers malformed tokens, signature mismatches and unknown claim shapes.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired is returned once the current time passes the token expiry.
	ErrExpired = errors.New("token expired")
)

// TokenKind discriminates access from refresh tokens on the wire.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims is implemented only by AccessClaims and RefreshClaims.
type Claims interface {
	Kind() TokenKind
	isClaims()
}

// AccessClaims identify the caller of an API request.
type AccessClaims struct {
	ID        string
	UserID    string
	Email     string
	Name      string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RefreshClaims only carry enough to re-load the principal.
type RefreshClaims struct {
	ID        string
	UserID    string
	Principal domain.PrincipalKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (AccessClaims) Kind() TokenKind  { return KindAccess }
func (RefreshClaims) Kind() TokenKind { return KindRefresh }
func (AccessClaims) isClaims()        {}
func (RefreshClaims) isClaims()       {}

// Principal returns the principal kind implied by the role.
func (c AccessClaims) Principal() domain.PrincipalKind {
	return c.Role.Kind()
}

// wireClaims is the JSON payload of every token.
type wireClaims struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email,omitempty"`
	Name   string    `json:"name,omitempty"`
	Role   string    `json:"role,omitempty"`
	Type   TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// TokenConfig configures a TokenManager.
type TokenConfig struct {
	Secret string
	Issuer string
	// Now defaults to time.Now.
	Now func() time.Time
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(cfg TokenConfig) *TokenManager {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &TokenManager{secret: []byte(cfg.Secret), issuer: cfg.Issuer, now: now}
}

// Sign encodes claims with an expiry ttl from now. The returned claims
// carry the generated token id and timestamps.
func (tm *TokenManager) Sign(claims Claims, ttl time.Duration) (string, Claims, error) {
	if ttl <= 0 {
		return "", nil, fmt.Errorf("sign %s token: ttl must be positive", claims.Kind())
	}
	now := tm.now()
	expiresAt := now.Add(ttl)
	id := ulid.Make().String()

	wire := wireClaims{Type: claims.Kind()}
	var audience domain.PrincipalKind

	switch c := claims.(type) {
	case AccessClaims:
		wire.UserID, wire.Email, wire.Name, wire.Role = c.UserID, c.Email, c.Name, string(c.Role)
		audience = c.Role.Kind()
		c.ID, c.IssuedAt, c.ExpiresAt = id, now, expiresAt
		claims = c
	case RefreshClaims:
		wire.UserID = c.UserID
		audience = c.Principal
		c.ID, c.IssuedAt, c.ExpiresAt = id, now, expiresAt
		claims = c
	default:
		return "", nil, fmt.Errorf("sign: unsupported claims %T", claims)
	}
	if wire.UserID == "" || audience == "" {
		return "", nil, fmt.Errorf("sign %s token: missing subject or principal", claims.Kind())
	}

	wire.RegisteredClaims = jwt.RegisteredClaims{
		ID:        id,
		Issuer:    tm.issuer,
		Subject:   wire.UserID,
		Audience:  jwt.ClaimStrings{string(audience)},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wire)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Verify validates the signature and expiry and returns the typed claims.
// Expiry is checked before the signature, so any expired token reports ErrExpired.
func (tm *TokenManager) Verify(tokenStr string) (Claims, error) {
	var unverified wireClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &unverified); err != nil {
		return nil, ErrInvalidSignature
	}
	if unverified.ExpiresAt == nil {
		return nil, ErrInvalidSignature
	}
	if tm.now().After(unverified.ExpiresAt.Time) {
		return nil, ErrExpired
	}

	var wire wireClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &wire, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSignature
	}
	if tm.issuer != "" && wire.Issuer != tm.issuer {
		return nil, ErrInvalidSignature
	}
	if wire.UserID == "" {
		return nil, ErrInvalidSignature
	}

	var issuedAt time.Time
	if wire.IssuedAt != nil {
		issuedAt = wire.IssuedAt.Time
	}

	switch wire.Type {
	case KindAccess:
		return AccessClaims{
			ID:        wire.ID,
			UserID:    wire.UserID,
			Email:     wire.Email,
			Name:      wire.Name,
			Role:      domain.Role(wire.Role),
			IssuedAt:  issuedAt,
			ExpiresAt: wire.ExpiresAt.Time,
		}, nil
	case KindRefresh:
		if len(wire.Audience) != 1 {
			return nil, ErrInvalidSignature
		}
		return RefreshClaims{
			ID:        wire.ID,
			UserID:    wire.UserID,
			Principal: domain.PrincipalKind(wire.Audience[0]),
			IssuedAt:  issuedAt,
			ExpiresAt: wire.ExpiresAt.Time,
		}, nil
	default:
		return nil, ErrInvalidSignature
	}
}
