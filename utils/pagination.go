package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination reads page and limit query parameters, falling back to sane
// defaults on absent or malformed values.
func Pagination(ctx *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
