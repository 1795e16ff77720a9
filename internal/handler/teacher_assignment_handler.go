package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

type TeacherAssignmentHandler struct {
	assignmentService *service.TeacherAssignmentService
}

func NewTeacherAssignmentHandler(assignmentService *service.TeacherAssignmentService) *TeacherAssignmentHandler {
	return &TeacherAssignmentHandler{assignmentService: assignmentService}
}

// List godoc
// GET /api/v1/admin/teacher-assignments
func (h *TeacherAssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignmentService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	if assignments == nil {
		assignments = []model.TeacherAssignment{}
	}
	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

// ListTeachers godoc
// GET /api/v1/admin/teachers
// Teacher roster for assignment forms.
func (h *TeacherAssignmentHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.assignmentService.ListTeachers(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// Create godoc
// POST /api/v1/admin/teacher-assignments
// section_id may be omitted to create a floating assignment that covers
// every section for the subject.
func (h *TeacherAssignmentHandler) Create(c *gin.Context) {
	var req model.CreateTeacherAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

// Deactivate godoc
// POST /api/v1/admin/teacher-assignments/:id/deactivate
func (h *TeacherAssignmentHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentService.Deactivate(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "assignment deactivated"})
}
