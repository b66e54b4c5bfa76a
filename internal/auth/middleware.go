package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// Context key for the authenticated user
const ContextKeyUser = "auth_user"

// RequireToken returns a middleware that rejects requests without a valid
// bearer token. The request is aborted with 401 and a Bearer challenge
// before it reaches any repository operation.
func RequireToken(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			challenge(c, "not authenticated")
			return
		}

		user, err := service.UserFromToken(token)
		if err != nil {
			challenge(c, "could not validate credentials")
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireToken,
// or nil when the request was not authenticated.
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}
	return user
}

// extractBearerToken pulls the token out of "Authorization: Bearer <token>".
func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func challenge(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}
