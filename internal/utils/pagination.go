package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts pagination parameters from the request.
// ok is false when the caller asked for neither page nor limit, in which
// case the full list is returned.
func GetPaginationParams(c *gin.Context) (PaginationParams, bool) {
	pageStr, hasPage := c.GetQuery("page")
	limitStr, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return PaginationParams{}, false
	}

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, true
}
