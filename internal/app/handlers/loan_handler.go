package handlers

import (
	"net/http"

	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService services.LoanServiceInterface
}

func NewLoanHandler(loanService services.LoanServiceInterface) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var request models.CreateLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, loan)
}

func (h *LoanHandler) UpdateLoan(c *gin.Context) {
	serialNumber := c.Param("serialNumber")

	var request models.UpdateLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.loanService.UpdateLoan(c.Request.Context(), serialNumber, request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) GetLoan(c *gin.Context) {
	serialNumber := c.Param("serialNumber")

	loan, err := h.loanService.LoanBySerialNumber(c.Request.Context(), serialNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) ListLoans(c *gin.Context) {
	loans, err := h.loanService.AllLoans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loans": loans, "count": len(loans)})
}

func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	serialNumber := c.Param("serialNumber")

	if err := h.loanService.DeleteLoan(c.Request.Context(), serialNumber); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": serialNumber})
}
