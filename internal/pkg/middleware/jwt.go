package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/roadbuddy/internal/pkg/jwt"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/internal/utils"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
)

// JWTAuthMiddleware verifies the bearer token and stores the caller's id
// and display name on the echo context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if config.Issuer != "" && !claims.VerifyIssuer(config.Issuer, true) {
				return utils.UnauthorizedResponse(c, "Invalid token: unexpected issuer")
			}

			userID, ok := claims["user_id"]
			if !ok || fmt.Sprintf("%v", userID) == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			name, _ := claims["name"].(string)

			c.Set(ContextKeyUserID, fmt.Sprintf("%v", userID))
			c.Set(ContextKeyUserName, name)

			return next(c)
		}
	}
}

// UserFromContext returns the caller set by JWTAuthMiddleware. The name
// falls back to the id when the token carries none.
func UserFromContext(c echo.Context) (id, name string, ok bool) {
	id, ok = c.Get(ContextKeyUserID).(string)
	if !ok || id == "" {
		return "", "", false
	}
	name, _ = c.Get(ContextKeyUserName).(string)
	if name == "" {
		name = id
	}
	return id, name, true
}
