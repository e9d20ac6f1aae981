package apierror

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathID parses a path parameter as an unsigned integer id. A value that is
// not one names no resource, so the request fails with 404 like any other
// unmatched route.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil {
		_ = c.Error(NotFound("Not Found"))
		return 0, false
	}
	return int64(id), true
}
