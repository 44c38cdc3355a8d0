package handler

import (
	"log/slog"
	"net/http"
	"time"

	"contact_service/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	guuid "github.com/google/uuid"
)

const (
	authTokenHeader = "x-auth-token"

	userIDKey    = "UserID"
	requestIDKey = "RequestID"
)

// AuthMiddleware reads a raw token from the x-auth-token header, verifies it
// and stores the user id in the gin context. It never touches the store.
func AuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(authTokenHeader)
		if tokenStr == "" {
			newErrorResponse(c, http.StatusUnauthorized, "No token, authorization denied")

			return
		}

		userID, err := auth.ParseJWT(tokenStr, jwtSecret)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Token is not valid")

			return
		}

		c.Set(userIDKey, userID)

		c.Next()
	}
}

func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	val, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	userID, ok := val.(uuid.UUID)
	return userID, ok
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := guuid.NewString()
		c.Set(requestIDKey, requestID)

		start := time.Now()
		c.Next()

		log.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
