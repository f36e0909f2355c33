package middleware

import (
	stderrors "errors"
	"strings"

	"receipt-tracker/internal/errors"
	"receipt-tracker/internal/handlers"
	"receipt-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TenantAuth validates the HS256 bearer token and puts the tenant, user and
// role it names on the echo context. An empty issuer skips the issuer check.
func TenantAuth(secret []byte, issuer string) echo.MiddlewareFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(parserOpts...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Expected a Bearer token"))
			}

			claims := &models.TenantClaims{}
			_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			tenantID, err := claims.TenantUUID()
			if err != nil || tenantID == uuid.Nil {
				return handlers.SendError(c, errors.AuthMissingTenant)
			}

			userID, err := claims.UserUUID()
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Invalid user ID in token"))
			}

			role := claims.Role
			if role == "" {
				role = models.RoleMember
			}

			c.Set(handlers.TenantIDContextKey, tenantID)
			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.UserRoleContextKey, role)

			return next(c)
		}
	}
}

func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get(handlers.UserRoleContextKey).(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("User role not found in token"))
			}

			for _, role := range requiredRoles {
				if userRole == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
