package handlers

import (
	"net/http"

	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentHandler(paymentService services.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) AddPayment(c *gin.Context) {
	var request models.AddPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, loan, err := h.paymentService.AddPayment(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment, "loan": loan})
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID := c.Param("paymentId")

	loan, err := h.paymentService.DeletePayment(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}
