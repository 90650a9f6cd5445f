package middleware

import (
	"strings"

	"adpulse/internal/delivery/api/response"
	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionCookieName carries the session token on browser navigations such as
// the OAuth consent redirect, where no Authorization header is sent.
const SessionCookieName = "adpulse_session"

const (
	contextKeyUserID   = "userID"
	contextKeyRoles    = "roles"
	contextKeyClientID = "clientID"
)

// AuthMiddleware validates dashboard session tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token, or the session cookie when no
// Authorization header is present, and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var tokenString string
		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
			}
			tokenString = token
		} else if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			tokenString = cookie.Value
		} else {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}
		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
		if claims.ClientID != nil {
			c.Set(contextKeyClientID, *claims.ClientID)
		}

		return next(c)
	}
}

// RequireRole lets the request through when the caller holds any of roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !held.ContainsAny(roles...) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

// GetClientID returns the client a CLIENT session is bound to.
func GetClientID(c echo.Context) (uuid.UUID, bool) {
	clientID, ok := c.Get(contextKeyClientID).(uuid.UUID)

	return clientID, ok
}

// IsAdmin reports whether the caller holds the ADMIN role.
func IsAdmin(c echo.Context) bool {
	roles, ok := GetRoles(c)

	return ok && roles.Contains(entity.RoleAdmin)
}
