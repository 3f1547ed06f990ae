package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/auth"
	"github.com/sabidos/sabidos-api/internal/constants"
	apierrors "github.com/sabidos/sabidos-api/internal/errors"
	"go.uber.org/zap"
)

const bearerPrefix = "bearer "

// RequireAuth checks the bearer token in the Authorization header
func RequireAuth(verifier auth.Verifier, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Debug("token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Store claims in context for easy access in handlers
		c.Set(constants.ContextKeyClaims, map[string]any(claims))
		c.Next()
	}
}

// GetClaims retrieves the verified token claims from context
func GetClaims(c *gin.Context) (map[string]any, bool) {
	value, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(map[string]any)
	return claims, ok
}

// GetIdentity resolves the caller from the verified claims
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return auth.Identity{}, false
	}
	return auth.IdentityFromClaims(claims)
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
