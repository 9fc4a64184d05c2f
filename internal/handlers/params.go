package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

// paramID parses a positive numeric path parameter, writing 400 when it
// is not one.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional numeric query value; 0 means absent.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id")
		return 0, false
	}
	return uint(id), true
}
