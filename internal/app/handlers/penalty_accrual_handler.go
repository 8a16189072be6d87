package handlers

import (
	"net/http"
	"time"

	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PenaltyAccrualHandler struct {
	penaltyAccrualService services.PenaltyAccrualServiceInterface
}

func NewPenaltyAccrualHandler(penaltyAccrualService services.PenaltyAccrualServiceInterface) *PenaltyAccrualHandler {
	return &PenaltyAccrualHandler{penaltyAccrualService: penaltyAccrualService}
}

func (h *PenaltyAccrualHandler) RunSweep(c *gin.Context) {
	var request models.PenaltyAccrualRequest
	if err := c.ShouldBindJSON(&request); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	if request.Now != "" {
		parsed, err := utils.ParseDate(request.Now)
		if err != nil {
			respondError(c, err)
			return
		}
		now = parsed
	}

	result, err := h.penaltyAccrualService.RunSweep(c.Request.Context(), now)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
