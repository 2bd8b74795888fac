package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/auth/token"
)

// RequireAuth validates the Authorization bearer token and stores the caller
// identity in the echo context as "uid" (uint) and "role" (string).
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := token.Verify(strings.TrimPrefix(h, "Bearer "), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			uid, err := claims.UserID()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set("uid", uid)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin guards admin-only routes. Must run after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get("role").(string); role != entities.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}

// UID returns the authenticated user id set by RequireAuth.
func UID(c echo.Context) uint {
	uid, _ := c.Get("uid").(uint)
	return uid
}
