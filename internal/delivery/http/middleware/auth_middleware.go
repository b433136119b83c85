package middleware

import (
	"errors"
	"strings"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/auth"
	"go-jobsearch-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenValidator verifies an access token and returns its claims.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid access token from the Authorization header
// or the auth_token cookie and exposes the actor id, email and type.
func AuthMiddleware(tokens TokenValidator, audit *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			reject(c, audit, "missing_token", "Authorization header or auth_token cookie required")
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				reject(c, audit, "token_expired", "Token has expired")
				return
			}
			reject(c, audit, "invalid_token", "Invalid token")
			return
		}
		if claims.UserType != domain.ActorUser && claims.UserType != domain.ActorCompany {
			reject(c, audit, "invalid_user_type", "Invalid token")
			return
		}

		setValue(c, domain.KeyUserID, claims.Subject)
		setValue(c, domain.KeyUserEmail, claims.Email)
		setValue(c, domain.KeyUserType, claims.UserType)

		c.Next()
	}
}

// RequireUserType rejects authenticated callers of any other actor type.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserType)) != userType {
			_ = c.Error(apperror.Forbidden("Only " + userType + " accounts can access this resource"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func reject(c *gin.Context, audit *security.SecurityLogger, reason, message string) {
	audit.LogUnauthorizedAccess(c.Request.Context(), c.ClientIP(), c.GetString(string(domain.KeyRequestID)), reason)
	_ = c.Error(apperror.Unauthorized(message))
	c.Abort()
}
