package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

type StudyLoadHandler struct {
	studyLoadService *service.StudyLoadService
}

func NewStudyLoadHandler(studyLoadService *service.StudyLoadService) *StudyLoadHandler {
	return &StudyLoadHandler{studyLoadService: studyLoadService}
}

// List godoc
// GET /api/v1/admin/study-loads?section_id=&semester=
// Entries with an empty stored semester label match any semester filter.
func (h *StudyLoadHandler) List(c *gin.Context) {
	var filter model.StudyLoadFilter
	if raw := c.Query("section_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter.SectionID = id
	}
	filter.Semester = c.Query("semester")

	loads, err := h.studyLoadService.List(c.Request.Context(), filter)
	if err != nil {
		failFromError(c, err)
		return
	}
	if loads == nil {
		loads = []model.StudyLoadEntry{}
	}
	response.Success(c, http.StatusOK, gin.H{"study_loads": loads})
}

// UpdateStatus godoc
// PATCH /api/v1/admin/study-loads/:id
// Status is the only hand-editable field; the rest is synthesized.
func (h *StudyLoadHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStudyLoadStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studyLoadService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "study load updated"})
}

// Delete godoc
// DELETE /api/v1/admin/study-loads/:id
func (h *StudyLoadHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.studyLoadService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "study load deleted"})
}
