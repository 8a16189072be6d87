package handlers

import (
	"net/http"

	app "globe/machop_loan_ledger/internal/app"

	"github.com/gin-gonic/gin"
)

type KafkaRetryHandler struct {
	service app.LedgerEventRetryService
}

func NewKafkaRetryHandler(service app.LedgerEventRetryService) *KafkaRetryHandler {
	return &KafkaRetryHandler{service: service}
}

func (h *KafkaRetryHandler) RetryLedgerEventMessages(c *gin.Context) {

	successMessages, failedMessages, err := h.service.RetryLedgerEventMessages(c.Request.Context())
	if err != nil && len(successMessages) > 0 {
		c.JSON(http.StatusOK, gin.H{"successMessages": successMessages, "failedMessages": failedMessages, "error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"successMessages": successMessages, "failedMessages": failedMessages})
}
