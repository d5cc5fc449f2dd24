package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"rfqdesk/internal/auth"
	apperrors "rfqdesk/internal/errors"
	"rfqdesk/internal/model"
)

// CurrentClaims returns the verified identity placed in the context by the
// JWT middleware.
func CurrentClaims(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}

// RequireRoles permits the request iff the verified role is in the allowed
// set. Record-level scoping stays in the services; this gate is role
// membership only.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}
			if _, ok := allowed[model.Role(claims.Role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "role not permitted for this operation",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// RejectRevoked refuses tokens that were signed out before their expiry.
func RejectRevoked(store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}
			revoked, err := store.IsTokenRevoked(c.Request().Context(), claims.ID)
			if err == nil && revoked {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrTokenRevoked)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
