package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/auth"
	apierrors "github.com/sabidos/sabidos-api/internal/errors"
	"github.com/sabidos/sabidos-api/internal/middleware"
	"github.com/sabidos/sabidos-api/internal/services"
	"github.com/sabidos/sabidos-api/internal/utils"
	"go.uber.org/zap"
)

// requireIdentity returns the caller or answers 401
func requireIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "Caller identity missing from token")
		return auth.Identity{}, false
	}
	return identity, true
}

// parseID reads the :id path parameter or answers 400
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// listInput maps the list query to service filters. The caller's own
// resources are listed unless all=true or authorUid is given.
func listInput(c *gin.Context, identity auth.Identity) services.ListInput {
	input := services.ListInput{AuthorUID: authorScope(c, identity)}

	if params, ok := utils.GetPaginationParams(c); ok {
		input.Limit = params.Limit
		input.Offset = params.Offset
	}

	return input
}

func authorScope(c *gin.Context, identity auth.Identity) string {
	if uid := c.Query("authorUid"); uid != "" {
		return uid
	}
	if all, _ := strconv.ParseBool(c.Query("all")); all {
		return ""
	}
	return identity.UID
}

// respondServiceError translates service errors to API errors
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrResourceNotFound):
		apierrors.NotFound(c, "")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrNotResourceOwner):
		apierrors.Forbidden(c, "Only the author can modify this resource")
	case errors.Is(err, services.ErrOwnerRequired):
		apierrors.Unauthorized(c, "")
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "AI service is not configured")
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		apierrors.InternalError(c, "")
	}
}
