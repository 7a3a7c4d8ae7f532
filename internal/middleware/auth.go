package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// TokenCookie is the cookie the login handler stores the access token in.
const TokenCookie = "token"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware resolves the caller from a Bearer token, or from the token
// cookie when no Authorization header is sent.
func AuthMiddleware(authenticator Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ""
		authHeader := ctx.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)

			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}

			tokenString = strings.TrimSpace(parts[1])
		} else if cookie, err := ctx.Cookie(TokenCookie); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		user, err := authenticator.Authenticate(ctx.Request.Context(), tokenString)

		if err != nil {
			appErr := apperr.From(err)
			ctx.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr.Message})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}
