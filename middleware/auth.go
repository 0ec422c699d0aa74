// middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// UserLookup loads the user a token was issued to.
type UserLookup interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
}

// Claims are the bearer token claims; the subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// ParseToken verifies an HS256 token signed with secret.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Authenticate verifies the bearer token and stores the current user record
// under util.RequestingUserKey. Roles and memberships are always read from
// the store, never from the token.
func Authenticate(secret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err), zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.Subject)
		if errors.Is(err, feed_errors.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}
		if err != nil {
			logger.Error("Failed to load requesting user", zap.Error(err), zap.String("userID", claims.Subject))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		c.Set(util.RequestingUserKey, user)
		c.Next()
	}
}
