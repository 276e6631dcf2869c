package middleware

import (
	"errors"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

// TokenCookieName is the cookie carrying the session credential.
const TokenCookieName = "token"

const ctxUserKey = "current_user"

// AuthMiddleware authenticates the cookie token and attaches the
// resolved user to the request. Authorization is a separate gate
// (RequireRole) so routes can compose the two independently.
type AuthMiddleware struct {
	jwt   jwt.Service
	users user.Repository
}

func NewAuthMiddleware(jwtSvc jwt.Service, users user.Repository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, users: users}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(TokenCookieName)
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "User not authorized", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid or expired token", err)
		}

		usr, err := m.users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return NewAppError(fiber.StatusUnauthorized, "User not found", err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", err)
		}
		usr.PasswordHash = ""

		c.Locals(ctxUserKey, usr)
		return c.Next()
	}
}

// RequireRole gates a route on the authenticated user's role. Must run
// after AuthMiddleware.
func RequireRole(role user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		usr, ok := CurrentUser(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "User not authorized", nil)
		}
		if usr.Role != role {
			return NewAppError(fiber.StatusForbidden, "You do not have permission to perform this action.", nil)
		}
		return c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c fiber.Ctx) (user.User, bool) {
	usr, ok := c.Locals(ctxUserKey).(user.User)
	return usr, ok
}
