package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scholara/campus-backend/internal/response"
	"github.com/scholara/campus-backend/internal/service"
)

const defaultRankingLimit = 5

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// GET /api/v1/admin/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// Rankings godoc
// GET /api/v1/admin/dashboard/rankings?limit=
// Lowest-rated teachers first.
func (h *DashboardHandler) Rankings(c *gin.Context) {
	limit := defaultRankingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxRankingLimit {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
			return
		}
		limit = n
	}

	rankings, err := h.dashboardService.LowestRatedTeachers(c.Request.Context(), limit)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rankings": rankings})
}
