package utils

import "globe/machop_loan_ledger/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "MACHOP_LOAN_LEDGER_INTERNAL_ERROR"
}
