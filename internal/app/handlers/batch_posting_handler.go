package handlers

import (
	"net/http"

	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type BatchPostingHandler struct {
	batchPostingService services.BatchPostingServiceInterface
}

func NewBatchPostingHandler(batchPostingService services.BatchPostingServiceInterface) *BatchPostingHandler {
	return &BatchPostingHandler{batchPostingService: batchPostingService}
}

func (h *BatchPostingHandler) PostBatch(c *gin.Context) {
	var request models.BatchPostingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.batchPostingService.ProcessBatch(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	// 207 when some entries failed so callers inspect the per-entry reasons.
	status := http.StatusOK
	if len(result.FailedPayments) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}
