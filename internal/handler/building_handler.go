package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
	"github.com/scholara/campus-backend/internal/validator"
)

type BuildingHandler struct {
	buildingService *service.BuildingService
}

func NewBuildingHandler(buildingService *service.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService}
}

// List godoc
// GET /api/v1/admin/buildings
func (h *BuildingHandler) List(c *gin.Context) {
	buildings, err := h.buildingService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	if buildings == nil {
		buildings = []model.Building{}
	}
	response.Success(c, http.StatusOK, gin.H{"buildings": buildings})
}

// Create godoc
// POST /api/v1/admin/buildings
func (h *BuildingHandler) Create(c *gin.Context) {
	var req model.CreateBuildingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	building := &model.Building{
		Name:          req.Name,
		Floors:        req.Floors,
		RoomsPerFloor: req.RoomsPerFloor,
		Description:   req.Description,
	}
	if err := h.buildingService.Create(c.Request.Context(), building); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"building": building})
}

// Update godoc
// PUT /api/v1/admin/buildings/:id
func (h *BuildingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateBuildingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	building := &model.Building{
		ID:            id,
		Name:          req.Name,
		Floors:        req.Floors,
		RoomsPerFloor: req.RoomsPerFloor,
		Description:   req.Description,
	}
	if err := h.buildingService.Update(c.Request.Context(), building); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"building": building})
}

// Delete godoc
// DELETE /api/v1/admin/buildings/:id
func (h *BuildingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.buildingService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "building deleted successfully"})
}
