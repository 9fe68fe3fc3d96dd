package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/shared/errors"
)

// ParseUintParam extracts a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), nil
}
