package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/repository"
	apperrors "github.com/Avangel08/furniro-sub001/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated staff caller.
type Principal struct {
	Claims AccessClaims
	Staff  *domain.StaffUser
}

// AuthMiddleware validates staff bearer tokens and loads the staff record.
type AuthMiddleware struct {
	tokens *TokenManager
	staff  repository.StaffRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, staff repository.StaffRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, staff: staff}
}

// Handle enforces staff authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := ExtractBearer(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apperrors.NewUnauthorized(apperrors.CodeNoToken, "no token provided")
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewUnauthorized(apperrors.CodeInvalidToken, "invalid or expired token")
	}
	access, ok := claims.(AccessClaims)
	if !ok || access.Principal() != domain.PrincipalStaff {
		return apperrors.NewUnauthorized(apperrors.CodeInvalidToken, "invalid or expired token")
	}

	staff, err := m.staff.GetByID(c.UserContext(), access.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized(apperrors.CodePrincipalNotFound, "account not found or inactive")
		}
		return apperrors.NewInternalError(err)
	}
	if !staff.Active {
		return apperrors.NewUnauthorized(apperrors.CodeAccountDeactivated, "account is deactivated")
	}

	c.Locals(principalKey, &Principal{Claims: access, Staff: staff})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(principalKey).(*Principal)
	return principal, ok && principal != nil
}
