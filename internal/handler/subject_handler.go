package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
}

func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// List godoc
// GET /api/v1/admin/subjects?course=&major=&semester=
// Semester filtering is variant-tolerant: "2nd sem", "second" and
// "SECOND SEMESTER" all select the same subjects.
func (h *SubjectHandler) List(c *gin.Context) {
	filter := model.SubjectFilter{
		Course:   c.Query("course"),
		Major:    c.Query("major"),
		Semester: c.Query("semester"),
	}

	subjects, err := h.subjectService.List(c.Request.Context(), filter)
	if err != nil {
		failFromError(c, err)
		return
	}
	if subjects == nil {
		subjects = []model.Subject{}
	}
	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// Get godoc
// GET /api/v1/admin/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	subject, err := h.subjectService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subject": subject})
}

// Create godoc
// POST /api/v1/admin/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject := &model.Subject{
		Code:      req.Code,
		Title:     req.Title,
		Units:     req.Units,
		Course:    req.Course,
		Major:     req.Major,
		YearLevel: req.YearLevel,
		Semester:  req.Semester,
	}
	if err := h.subjectService.Create(c.Request.Context(), subject); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subject": subject})
}

// Update godoc
// PUT /api/v1/admin/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject := &model.Subject{
		ID:        id,
		Code:      req.Code,
		Title:     req.Title,
		Units:     req.Units,
		Course:    req.Course,
		Major:     req.Major,
		YearLevel: req.YearLevel,
		Semester:  req.Semester,
	}
	if err := h.subjectService.Update(c.Request.Context(), subject); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subject": subject})
}

// Delete godoc
// DELETE /api/v1/admin/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.subjectService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subject deleted successfully"})
}
