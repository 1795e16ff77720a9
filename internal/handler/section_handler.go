package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

type SectionHandler struct {
	sectionService   *service.SectionService
	roomService      *service.RoomAssignmentService
	studyLoadService *service.StudyLoadService
}

func NewSectionHandler(
	sectionService *service.SectionService,
	roomService *service.RoomAssignmentService,
	studyLoadService *service.StudyLoadService,
) *SectionHandler {
	return &SectionHandler{
		sectionService:   sectionService,
		roomService:      roomService,
		studyLoadService: studyLoadService,
	}
}

// List godoc
// GET /api/v1/admin/sections
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sectionService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	if sections == nil {
		sections = []model.Section{}
	}
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// ListWithLoad godoc
// GET /api/v1/admin/sections-with-load
func (h *SectionHandler) ListWithLoad(c *gin.Context) {
	sections, err := h.sectionService.ListWithLoad(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	if sections == nil {
		sections = []model.SectionWithLoad{}
	}
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// Get godoc
// GET /api/v1/admin/sections/:id
func (h *SectionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	section, err := h.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"section": section})
}

// Roster godoc
// GET /api/v1/admin/sections/:id/roster
func (h *SectionHandler) Roster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	roster, err := h.sectionService.Roster(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	if roster == nil {
		roster = []model.RosterEntry{}
	}
	response.Success(c, http.StatusOK, gin.H{"roster": roster})
}

// Create godoc
// POST /api/v1/admin/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req model.CreateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{
		Name:       req.Name,
		YearLevel:  req.YearLevel,
		SchoolYear: req.SchoolYear,
		Course:     req.Course,
		Major:      req.Major,
	}
	if err := h.sectionService.Create(c.Request.Context(), section); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"section": section})
}

// Update godoc
// PUT /api/v1/admin/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{
		ID:         id,
		Name:       req.Name,
		YearLevel:  req.YearLevel,
		SchoolYear: req.SchoolYear,
		Course:     req.Course,
		Major:      req.Major,
	}
	if err := h.sectionService.Update(c.Request.Context(), section); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"section": section})
}

// Delete godoc
// DELETE /api/v1/admin/sections/:id
// Refused while the section still has active enrollments.
func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "section deleted successfully"})
}

// AssignRoom godoc
// POST /api/v1/admin/sections/:id/room
func (h *SectionHandler) AssignRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.AssignRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	req.SectionID = id

	assignment, err := h.roomService.Assign(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_assignment": assignment})
}

// CurrentRoom godoc
// GET /api/v1/admin/sections/:id/room
func (h *SectionHandler) CurrentRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	assignment, err := h.roomService.Current(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_assignment": assignment})
}

// RoomHistory godoc
// GET /api/v1/admin/sections/:id/room/history
// Returns every assignment for the section, superseded rows included.
func (h *SectionHandler) RoomHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	history, err := h.roomService.History(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	if history == nil {
		history = []model.SectionRoomAssignment{}
	}
	response.Success(c, http.StatusOK, gin.H{"history": history})
}

// DeleteStudyLoads godoc
// DELETE /api/v1/admin/sections/:id/study-loads
func (h *SectionHandler) DeleteStudyLoads(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.studyLoadService.DeleteBySection(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}
