package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter. On failure it
// writes the 400 response itself and reports false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
