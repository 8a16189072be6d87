package consts

import "globe/machop_loan_ledger/internal/pkg/models"

var (
	ErrorInvalidAmount = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_INVALID_AMOUNT",
		Message: "Payment amount must be greater than zero",
	}
	ErrorLoanNotFound = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_LOAN_NOT_FOUND",
		Message: "No loan found for the given serial number",
	}
	ErrorInvalidTerm = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_INVALID_TERM",
		Message: "Loan terms require a positive principal and period count",
	}
	ErrorInvalidScheduleKind = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_INVALID_SCHEDULE_KIND",
		Message: "Schedule kind must be daily, weekly or monthly",
	}
	ErrorInvalidSerialNumber = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_INVALID_SERIAL_NUMBER",
		Message: "Serial number is required and must be alphanumeric",
	}
	ErrorDuplicateSerialNumber = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_DUPLICATE_SERIAL_NUMBER",
		Message: "A loan with this serial number already exists",
	}
	ErrorInvalidDate = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_INVALID_DATE",
		Message: "Date must be in YYYY-MM-DD format",
	}
	ErrorBatchInProgress = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_DUPLICATE_BATCH",
		Message: "A batch posting for this collection date is already in progress",
	}
	ErrorBatchPartialFailure = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_INTERNAL_ERROR_BATCH_COMMIT_FAILED",
		Message: "Batch commit failed; staged payments were rolled back",
	}
	ErrorPaymentNotFound = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_PAYMENT_NOT_FOUND",
		Message: "No payment found for the given id",
	}
	ErrorAreaNotFound = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_VALIDATION_AREA_NOT_FOUND",
		Message: "No area found for the given id",
	}
	ErrorNoDocumentFound = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_INTERNAL_ERROR_NO_DOCUMENTS_FOUND",
		Message: "No documents in result",
	}
	ErrorQueryingDatabase = &models.CustomError{
		Code:    "MACHOP_LOAN_LEDGER_INTERNAL_ERROR_DATABASE_QUERY_FAILED",
		Message: "Error querying the database",
	}
)

// Reasons carried per entry in a batch result. These are wire values the
// posting UI matches on, not display text.
const (
	ReasonLoanNotFound  = "LoanNotFound"
	ReasonInvalidAmount = "InvalidAmount"
	ReasonBlankSerial   = "BlankSerialNumber"
)
