// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/model"
)

// RequestingUserKey is the gin context key holding the authenticated model.User.
const RequestingUserKey = "requestingUser"

// RequestIDKey is the gin context key holding the request's correlation id.
const RequestIDKey = "requestID"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("requestID", c.GetString(RequestIDKey)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

func GetRequestingUser(c *gin.Context) (model.User, error) {
	v, exists := c.Get(RequestingUserKey)
	if !exists {
		return model.User{}, feed_errors.ErrUnauthorized
	}
	user, ok := v.(model.User)
	if !ok {
		return model.User{}, feed_errors.ErrUnauthorized
	}
	return user, nil
}
