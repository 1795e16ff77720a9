package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
)

// failFromError maps a service error onto the HTTP envelope. Order
// matters: the conflict refinements must be checked before the bare
// ErrConflict they wrap.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomTaken):
		response.Fail(c, http.StatusConflict, response.ErrRoomTaken)
	case errors.Is(err, service.ErrScheduleConflict):
		response.Fail(c, http.StatusConflict, response.ErrScheduleConflict)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrNoTeacherAssigned):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoTeacherAssigned)
	case errors.Is(err, service.ErrDependencyExists):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pathID parses the :id route param. Returns false after writing the
// error response.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
