package handlers

import (
	"net/http"

	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type AreaHandler struct {
	areaService services.AreaServiceInterface
}

func NewAreaHandler(areaService services.AreaServiceInterface) *AreaHandler {
	return &AreaHandler{areaService: areaService}
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	var request models.AreaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := h.areaService.CreateArea(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, area)
}

func (h *AreaHandler) UpdateArea(c *gin.Context) {
	var request models.AreaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := h.areaService.UpdateArea(c.Request.Context(), c.Param("id"), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	if err := h.areaService.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *AreaHandler) ListAreas(c *gin.Context) {
	areas, err := h.areaService.AllAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas, "count": len(areas)})
}

func (h *AreaHandler) AreaStats(c *gin.Context) {
	stats, err := h.areaService.AreaStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AreaHandler) AreaCostSummary(c *gin.Context) {
	summary, err := h.areaService.AreaCostSummary(c.Request.Context(), c.Param("id"), c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AreaHandler) UpdateAreaCost(c *gin.Context) {
	var request models.AreaCostUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cost, err := h.areaService.UpdateAreaCost(c.Request.Context(), c.Param("id"), c.Query("month"), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cost)
}
