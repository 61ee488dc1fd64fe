package controllers

import (
	"errors"

	"github.com/cooper235/Canteen-project-sub000/pkg/resp"
	"github.com/cooper235/Canteen-project-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// serviceError maps service sentinels onto the response envelope. Anything
// unrecognized is treated as a validation reason, matching the teacher's
// convention of reason-string errors from services.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrTerminal), errors.Is(err, services.ErrConflict):
		resp.BadRequest(c, err.Error())
	default:
		resp.BadRequest(c, err.Error())
	}
}
