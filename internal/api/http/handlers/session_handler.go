package handlers

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Avangel08/furniro-sub001/internal/api/dto"
	"github.com/Avangel08/furniro-sub001/internal/auth"
	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/service"
	apperrors "github.com/Avangel08/furniro-sub001/pkg/util/errorutil"
)

const tokenType = "Bearer"

// SessionHandler exposes login, refresh, me and logout for one principal kind.
type SessionHandler struct {
	sessions *service.SessionService
	kind     domain.PrincipalKind
	cookie   auth.CookiePolicy
	validate *validator.Validate
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService, kind domain.PrincipalKind, secureCookies bool) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		kind:     kind,
		cookie:   auth.NewCookiePolicy(kind, sessions.RefreshTTL(kind), secureCookies),
		validate: newValidator(),
	}
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Login handles POST /api/auth/login and /api/auth/customer/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(&req); err != nil {
		return validationError(err)
	}

	var (
		user   any
		tokens service.TokenPair
	)
	switch h.kind {
	case domain.PrincipalStaff:
		session, err := h.sessions.LoginStaff(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return err
		}
		user, tokens = dto.NewStaffUserResponse(session.Staff), session.Tokens
	case domain.PrincipalCustomer:
		session, err := h.sessions.LoginCustomer(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return err
		}
		user, tokens = dto.NewCustomerResponse(session.Customer), session.Tokens
	default:
		return apperrors.NewInternalError(errors.New("unknown principal kind"))
	}

	c.Append(fiber.HeaderSetCookie, h.cookie.Issue(tokens.RefreshToken))
	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.LoginResponse{
			AccessToken: tokens.AccessToken,
			TokenType:   tokenType,
			ExpiresIn:   seconds(tokens.AccessTTL),
			User:        user,
		},
	})
}

// Refresh handles POST /api/auth/refresh and /api/auth/customer/refresh.
// A rejected refresh also clears the cookie.
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	pair, err := h.sessions.Refresh(c.UserContext(), h.kind, c.Cookies(h.cookie.Name))
	if err != nil {
		c.Append(fiber.HeaderSetCookie, h.cookie.Clear())
		return err
	}

	c.Append(fiber.HeaderSetCookie, h.cookie.Issue(pair.RefreshToken))
	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.RefreshResponse{
			AccessToken: pair.AccessToken,
			TokenType:   tokenType,
			ExpiresIn:   seconds(pair.AccessTTL),
		},
	})
}

// Me handles GET /api/auth/me and /api/auth/customer/me.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	authorization := c.Get(fiber.HeaderAuthorization)

	var user any
	switch h.kind {
	case domain.PrincipalStaff:
		staff, err := h.sessions.StaffProfile(c.UserContext(), authorization)
		if err != nil {
			return err
		}
		user = dto.NewStaffUserResponse(staff)
	case domain.PrincipalCustomer:
		profile, err := h.sessions.CustomerProfile(c.UserContext(), authorization)
		if err != nil {
			return err
		}
		resp := dto.NewCustomerResponse(profile.Customer)
		resp.Addresses = make([]dto.AddressResponse, 0, len(profile.Addresses))
		for i := range profile.Addresses {
			resp.Addresses = append(resp.Addresses, *dto.NewAddressResponse(&profile.Addresses[i]))
		}
		resp.DefaultShippingAddress = dto.NewAddressResponse(profile.DefaultShipping)
		resp.DefaultBillingAddress = dto.NewAddressResponse(profile.DefaultBilling)
		user = resp
	default:
		return apperrors.NewInternalError(errors.New("unknown principal kind"))
	}

	return c.JSON(fiber.Map{"success": true, "data": dto.MeResponse{User: user}})
}

// Logout handles POST /api/auth/logout and /api/auth/customer/logout. It
// always succeeds.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(c.UserContext(), h.kind, c.Cookies(h.cookie.Name))

	c.Append(fiber.HeaderSetCookie, h.cookie.Clear())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "logged out"})
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError("email and password are required", details)
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
