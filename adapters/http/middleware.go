package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

const (
	GinContextKeyAccountID = "accountID"
)

func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.NewUnauthorized("Authorization header is required", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperror.NewUnauthorized("Invalid token format", nil))
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			log.Warn("Rejected bearer token", zap.String("path", c.FullPath()), zap.Error(err))
			c.Error(apperror.NewUnauthorized("Invalid or expired token", err))
			c.Abort()
			return
		}

		c.Set(GinContextKeyAccountID, claims.AccountID)

		c.Next()
	}
}

// AccountOwnerMiddleware lets a token act only on its own account.
func AccountOwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenAccountID, ok := GetAccountIDFromGinContext(c)
		if !ok {
			c.Error(apperror.NewPermissionDenied("accountID not found in context"))
			c.Abort()
			return
		}
		pathAccountID, err := uuid.Parse(c.Param("accountId"))
		if err != nil {
			c.Error(apperror.NewInvalidInput("accountId must be a UUID", err))
			c.Abort()
			return
		}
		if pathAccountID != tokenAccountID {
			c.Error(apperror.NewPermissionDenied("token does not belong to this account"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorMiddleware renders the last handler error as JSON.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		status := apperror.ToHTTPStatus(appErr)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		}
		if status >= 500 {
			log.Error("Request failed", appErr, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.String("error", appErr.Error()))...)
		}

		if !c.Writer.Written() {
			c.JSON(status, appErr.ToJSON())
		}
	}
}

func GetAccountIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(GinContextKeyAccountID)
	if !ok {
		return uuid.Nil, false
	}
	accountUUID, ok := accountID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return accountUUID, true
}
