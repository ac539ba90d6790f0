package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-interview-report-backend/internal/delivery/http/response"
	"go-interview-report-backend/internal/domain"
	"go-interview-report-backend/pkg/apperror"
	"go-interview-report-backend/pkg/auth"
	"go-interview-report-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware verifies the ID token, then loads the account so role and
// status come from the store rather than the token.
func AuthMiddleware(verifier TokenVerifier, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Log.Debug("token validation failed",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err),
			)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		principal, err := authUC.ResolvePrincipal(c.Request.Context(), claims.Subject)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "User not found", nil)
			}
			c.Abort()
			return
		}

		email := principal.Email
		if email == "" {
			email = claims.Email
		}

		c.Set(string(domain.KeyUserID), principal.UID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), string(principal.Role))
		c.Set(string(domain.KeyAccountStatus), string(principal.AccountStatus))

		c.Next()
	}
}

// CurrentIdentity returns the caller resolved by AuthMiddleware.
func CurrentIdentity(c *gin.Context) domain.Identity {
	return domain.Identity{
		UID:  c.GetString(string(domain.KeyUserID)),
		Role: domain.Role(c.GetString(string(domain.KeyUserRole))),
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
