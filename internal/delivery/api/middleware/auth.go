package middleware

import (
	"strings"

	"gsync/internal/delivery/api/response"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/entity"
	"gsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetCaller(c, claims.UserID, claims.Roles)

		return next(c)
	}
}

// RequireRole checks the caller holds role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !HasRole(c, role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// GetRoles returns the authenticated user's roles. Unknown role claims are dropped.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := deliverycontext.GetRoles(c)
	if !ok {
		return nil, false
	}

	return entity.RolesFromStrings(roles), true
}

// HasRole reports whether the authenticated caller holds role.
func HasRole(c echo.Context, role entity.Role) bool {
	roles, ok := GetRoles(c)

	return ok && roles.Contains(role)
}
