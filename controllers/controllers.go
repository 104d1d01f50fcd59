package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter. A non-numeric value comes back as
// zero so the service layer rejects it with its own message.
func pathID(c *gin.Context, name string) int {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0
	}
	return id
}
