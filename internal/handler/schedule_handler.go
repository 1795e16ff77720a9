package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Create godoc
// POST /api/v1/admin/schedules
// Runs the full pipeline: teacher resolution, optional room assignment,
// conflict detection and study-load synthesis in one transaction.
// Placeholder times ("00:00"/"00:00") skip the meeting insert but still
// produce the study-load entry.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req model.CreateScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.scheduleService.Create(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List godoc
// GET /api/v1/admin/schedules
// Served from the cached resolved view (teacher, subject, room names).
func (h *ScheduleHandler) List(c *gin.Context) {
	views, err := h.scheduleService.ListViews(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	if views == nil {
		views = []model.ScheduleView{}
	}
	response.Success(c, http.StatusOK, gin.H{"schedules": views})
}
