package handlers

import (
	"net/http"

	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// statusForError maps ledger errors onto HTTP statuses. Anything unrecognized
// is a 500.
func statusForError(err error) int {
	switch err {
	case consts.ErrorLoanNotFound, consts.ErrorPaymentNotFound, consts.ErrorAreaNotFound, consts.ErrorNoDocumentFound:
		return http.StatusNotFound
	case consts.ErrorInvalidAmount, consts.ErrorInvalidTerm, consts.ErrorInvalidScheduleKind, consts.ErrorInvalidSerialNumber, consts.ErrorInvalidDate:
		return http.StatusBadRequest
	case consts.ErrorDuplicateSerialNumber, consts.ErrorBatchInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{
		"code":  utils.GetErrorCode(err),
		"error": err.Error(),
	})
}
