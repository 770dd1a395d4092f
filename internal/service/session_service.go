package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/auth"
	"github.com/Avangel08/furniro-sub001/internal/config"
	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/events"
	"github.com/Avangel08/furniro-sub001/internal/observability"
	"github.com/Avangel08/furniro-sub001/internal/repository"
	apperrors "github.com/Avangel08/furniro-sub001/pkg/util/errorutil"
)

// Session errors. Authentication failures share generic messages so callers
// cannot tell which factor failed.
var (
	ErrInvalidCredentials  = apperrors.NewUnauthorized(apperrors.CodeInvalidCredentials, "invalid email or password")
	ErrAccountDeactivated  = apperrors.NewUnauthorized(apperrors.CodeAccountDeactivated, "account is deactivated")
	ErrNoRefreshToken      = apperrors.NewUnauthorized(apperrors.CodeNoRefreshToken, "no refresh token provided")
	ErrInvalidRefreshToken = apperrors.NewUnauthorized(apperrors.CodeInvalidRefreshToken, "invalid or expired refresh token")
	ErrPrincipalNotFound   = apperrors.NewUnauthorized(apperrors.CodePrincipalNotFound, "account not found or inactive")
	ErrNoToken             = apperrors.NewUnauthorized(apperrors.CodeNoToken, "no token provided")
	ErrInvalidToken        = apperrors.NewUnauthorized(apperrors.CodeInvalidToken, "invalid or expired token")
	ErrUserNotFound        = apperrors.NewNotFound("user")
)

// TokenPair is the result of a login or refresh. The refresh token only
// ever leaves the server in a cookie.
type TokenPair struct {
	AccessToken     string
	AccessExpiresAt time.Time
	AccessTTL       time.Duration
	RefreshToken    string
	RefreshTTL      time.Duration
}

// StaffSession is returned by a staff login.
type StaffSession struct {
	Staff  *domain.StaffUser
	Tokens TokenPair
}

// CustomerSession is returned by a customer login.
type CustomerSession struct {
	Customer *domain.Customer
	Tokens   TokenPair
}

// CustomerProfile is the customer "me" view.
type CustomerProfile struct {
	Customer        *domain.Customer
	Addresses       []domain.Address
	DefaultShipping *domain.Address
	DefaultBilling  *domain.Address
}

// SessionDependencies encapsulates collaborators for the session service.
type SessionDependencies struct {
	StaffRepo    repository.StaffRepository
	CustomerRepo repository.CustomerRepository
	// Denylist is optional; nil keeps refresh tokens purely stateless.
	Denylist   repository.TokenDenylist
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Now        func() time.Time
}

// SessionService runs the login, refresh, me and logout flows for staff and customers.
type SessionService struct {
	staff      repository.StaffRepository
	customers  repository.CustomerRepository
	denylist   repository.TokenDenylist
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	tokens     *auth.TokenManager
	now        func() time.Time
	accessTTL  time.Duration
	refreshTTL map[domain.PrincipalKind]time.Duration
}

// NewSessionService builds the service.
func NewSessionService(cfg config.AuthConfig, deps SessionDependencies) *SessionService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		staff:      deps.StaffRepo,
		customers:  deps.CustomerRepo,
		denylist:   deps.Denylist,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		tokens:     auth.NewTokenManager(auth.TokenConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, Now: now}),
		now:        now,
		accessTTL:  cfg.AccessTTL(),
		refreshTTL: map[domain.PrincipalKind]time.Duration{
			domain.PrincipalStaff:    cfg.StaffRefreshTTL(),
			domain.PrincipalCustomer: cfg.CustomerRefreshTTL(),
		},
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *SessionService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// RefreshTTL returns the refresh token lifetime for a principal kind.
func (s *SessionService) RefreshTTL(kind domain.PrincipalKind) time.Duration {
	return s.refreshTTL[kind]
}

// account is the slice of a principal record the session flow works with.
type account struct {
	id     string
	email  string
	name   string
	role   domain.Role
	hash   string
	active bool
}

func staffAccount(u *domain.StaffUser) account {
	return account{id: u.ID, email: u.Email, name: u.Name, role: u.Role, hash: u.PasswordHash, active: u.Active}
}

func customerAccount(c *domain.Customer) account {
	return account{id: c.ID, email: c.Email, name: c.Name, role: domain.RoleCustomer, hash: c.PasswordHash, active: c.Active}
}

// LoginStaff authenticates a back-office user and records the login time.
func (s *SessionService) LoginStaff(ctx context.Context, email, password string) (*StaffSession, error) {
	var staff *domain.StaffUser
	acct, err := s.authenticate(ctx, domain.PrincipalStaff, email, password, func(email string) (account, error) {
		u, err := s.staff.GetByEmail(ctx, email)
		if err != nil {
			return account{}, err
		}
		staff = u
		return staffAccount(u), nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := s.issuePair(domain.PrincipalStaff, acct)
	if err != nil {
		return nil, err
	}

	loginAt := s.now()
	if err := s.staff.UpdateLastLogin(ctx, staff.ID, loginAt); err != nil {
		s.logger.Warn("record last login", zap.String("staff_id", staff.ID), zap.Error(err))
	} else {
		staff.LastLogin = &loginAt
	}

	s.loginSucceeded(ctx, domain.PrincipalStaff, acct.id)
	return &StaffSession{Staff: staff, Tokens: *pair}, nil
}

// LoginCustomer authenticates a storefront customer.
func (s *SessionService) LoginCustomer(ctx context.Context, email, password string) (*CustomerSession, error) {
	var customer *domain.Customer
	acct, err := s.authenticate(ctx, domain.PrincipalCustomer, email, password, func(email string) (account, error) {
		c, err := s.customers.GetByEmail(ctx, email)
		if err != nil {
			return account{}, err
		}
		customer = c
		return customerAccount(c), nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := s.issuePair(domain.PrincipalCustomer, acct)
	if err != nil {
		return nil, err
	}

	s.loginSucceeded(ctx, domain.PrincipalCustomer, acct.id)
	return &CustomerSession{Customer: customer, Tokens: *pair}, nil
}

func (s *SessionService) authenticate(ctx context.Context, kind domain.PrincipalKind, email, password string, lookup func(string) (account, error)) (account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acct, err := lookup(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			auth.BurnCompare(password)
			s.loginFailed(ctx, kind, email, "unknown email")
			return account{}, ErrInvalidCredentials
		}
		return account{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(acct.hash, password); err != nil {
		s.loginFailed(ctx, kind, email, "password mismatch")
		return account{}, ErrInvalidCredentials
	}
	if !acct.active {
		s.metrics.RecordLogin(kind, observability.LoginDeactivated)
		s.publish(ctx, events.Event{
			Type:    events.EventLoginFailed,
			Actor:   events.Actor{Kind: kind, UserID: acct.id},
			Payload: events.LoginFailedPayload{Email: email, Reason: "deactivated"},
		})
		return account{}, ErrAccountDeactivated
	}
	return acct, nil
}

// Refresh rotates the session behind a refresh token: a new access and
// refresh token pair is minted for the principal the token names.
func (s *SessionService) Refresh(ctx context.Context, kind domain.PrincipalKind, refreshToken string) (*TokenPair, error) {
	pair, err := s.refresh(ctx, kind, refreshToken)
	s.metrics.RecordRefresh(kind, err == nil)
	return pair, err
}

func (s *SessionService) refresh(ctx context.Context, kind domain.PrincipalKind, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	rc, ok := claims.(auth.RefreshClaims)
	if !ok || rc.Principal != kind {
		return nil, ErrInvalidRefreshToken
	}

	acct, err := s.loadAccount(ctx, kind, rc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, apperrors.NewInternalError(err)
	}
	if !acct.active {
		return nil, ErrPrincipalNotFound
	}

	// Claiming the jti is the only gate: concurrent refreshes with the same
	// token race on the claim and only one wins.
	if s.denylist != nil {
		claimed, err := s.denylist.TryRevoke(ctx, rc.ID, rc.ExpiresAt)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		if !claimed {
			return nil, ErrInvalidRefreshToken
		}
	}

	pair, err := s.issuePair(kind, acct)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{Type: events.EventSessionRefreshed, Actor: events.Actor{Kind: kind, UserID: acct.id}})
	return pair, nil
}

// StaffProfile resolves the staff user behind a bearer header value.
func (s *SessionService) StaffProfile(ctx context.Context, authorization string) (*domain.StaffUser, error) {
	claims, err := s.accessClaims(authorization, domain.PrincipalStaff)
	if err != nil {
		return nil, err
	}

	staff, err := s.staff.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.NewInternalError(err)
	}
	if !staff.Active {
		return nil, ErrAccountDeactivated
	}
	return staff, nil
}

// CustomerProfile resolves the customer behind a bearer header value along
// with their addresses and derived defaults.
func (s *SessionService) CustomerProfile(ctx context.Context, authorization string) (*CustomerProfile, error) {
	claims, err := s.accessClaims(authorization, domain.PrincipalCustomer)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.NewInternalError(err)
	}
	if !customer.Active {
		return nil, ErrAccountDeactivated
	}

	addresses, err := s.customers.ListAddresses(ctx, customer.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &CustomerProfile{
		Customer:        customer,
		Addresses:       addresses,
		DefaultShipping: domain.DefaultShipping(addresses),
		DefaultBilling:  domain.DefaultBilling(addresses),
	}, nil
}

func (s *SessionService) accessClaims(authorization string, kind domain.PrincipalKind) (auth.AccessClaims, error) {
	token, ok := auth.ExtractBearer(authorization)
	if !ok {
		return auth.AccessClaims{}, ErrNoToken
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return auth.AccessClaims{}, ErrInvalidToken
	}
	ac, ok := claims.(auth.AccessClaims)
	if !ok || ac.Principal() != kind {
		return auth.AccessClaims{}, ErrInvalidToken
	}
	return ac, nil
}

// Logout ends the session. It never fails; with a denylist configured the
// presented refresh token is also revoked.
func (s *SessionService) Logout(ctx context.Context, kind domain.PrincipalKind, refreshToken string) {
	actor := events.Actor{Kind: kind}

	if refreshToken != "" {
		if claims, err := s.tokens.Verify(refreshToken); err == nil {
			if rc, ok := claims.(auth.RefreshClaims); ok && rc.Principal == kind {
				actor.UserID = rc.UserID
				if s.denylist != nil {
					if _, err := s.denylist.TryRevoke(ctx, rc.ID, rc.ExpiresAt); err != nil {
						s.logger.Warn("revoke refresh token on logout", zap.String("user_id", rc.UserID), zap.Error(err))
					}
				}
			}
		}
	}

	s.publish(ctx, events.Event{Type: events.EventSessionEnded, Actor: actor})
}

func (s *SessionService) loadAccount(ctx context.Context, kind domain.PrincipalKind, id string) (account, error) {
	switch kind {
	case domain.PrincipalStaff:
		u, err := s.staff.GetByID(ctx, id)
		if err != nil {
			return account{}, err
		}
		return staffAccount(u), nil
	case domain.PrincipalCustomer:
		c, err := s.customers.GetByID(ctx, id)
		if err != nil {
			return account{}, err
		}
		return customerAccount(c), nil
	default:
		return account{}, repository.ErrNotFound
	}
}

func (s *SessionService) issuePair(kind domain.PrincipalKind, acct account) (*TokenPair, error) {
	access, claims, err := s.tokens.Sign(auth.AccessClaims{
		UserID: acct.id,
		Email:  acct.email,
		Name:   acct.name,
		Role:   acct.role,
	}, s.accessTTL)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	refreshTTL := s.refreshTTL[kind]
	refresh, _, err := s.tokens.Sign(auth.RefreshClaims{UserID: acct.id, Principal: kind}, refreshTTL)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &TokenPair{
		AccessToken:     access,
		AccessExpiresAt: claims.(auth.AccessClaims).ExpiresAt,
		AccessTTL:       s.accessTTL,
		RefreshToken:    refresh,
		RefreshTTL:      refreshTTL,
	}, nil
}

func (s *SessionService) loginSucceeded(ctx context.Context, kind domain.PrincipalKind, userID string) {
	s.metrics.RecordLogin(kind, observability.LoginSucceeded)
	s.publish(ctx, events.Event{Type: events.EventSessionStarted, Actor: events.Actor{Kind: kind, UserID: userID}})
}

func (s *SessionService) loginFailed(ctx context.Context, kind domain.PrincipalKind, email, reason string) {
	s.metrics.RecordLogin(kind, observability.LoginRejected)
	s.publish(ctx, events.Event{
		Type:    events.EventLoginFailed,
		Actor:   events.Actor{Kind: kind},
		Payload: events.LoginFailedPayload{Email: email, Reason: reason},
	})
}

func (s *SessionService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
