package ledger

import (
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanResolver maps a serial number to its loan. The second return reports
// whether the serial resolved.
type LoanResolver func(serialNumber string) (models.Loan, bool)

// StageBatch validates one collection run's entries and splits them into
// stageable payments and per-entry failures, without touching the store.
// Commit is the caller's job and must be all-or-nothing.
//
// Entries that resolve to the same loan are merged by summing amounts,
// matching what an agent keying the rows one at a time would produce.
func StageBatch(date time.Time, scheduleKind string, entries []models.PaymentEntry, resolve LoanResolver) models.BatchResult {
	result := models.BatchResult{
		BatchID:            uuid.New().String(),
		SuccessfulPayments: []models.StagedPayment{},
		FailedPayments:     []models.FailedPayment{},
	}

	stagedIndex := make(map[primitive.ObjectID]int)

	for _, entry := range entries {
		serialNumber := strings.TrimSpace(entry.SerialNumber)
		if serialNumber == "" {
			result.FailedPayments = append(result.FailedPayments, models.FailedPayment{
				SerialNumber: entry.SerialNumber,
				Reason:       consts.ReasonBlankSerial,
			})
			continue
		}

		loan, ok := resolve(serialNumber)
		if !ok {
			result.FailedPayments = append(result.FailedPayments, models.FailedPayment{
				SerialNumber: serialNumber,
				Reason:       consts.ReasonLoanNotFound,
			})
			continue
		}

		if entry.Amount <= 0 {
			result.FailedPayments = append(result.FailedPayments, models.FailedPayment{
				SerialNumber: serialNumber,
				Reason:       consts.ReasonInvalidAmount,
			})
			continue
		}

		if existing, seen := stagedIndex[loan.ID]; seen {
			result.SuccessfulPayments[existing].Amount += entry.Amount
			continue
		}

		stagedIndex[loan.ID] = len(result.SuccessfulPayments)
		result.SuccessfulPayments = append(result.SuccessfulPayments, models.StagedPayment{
			LoanID:       loan.ID,
			SerialNumber: loan.SerialNumber,
			CustomerName: loan.CustomerName,
			AreaID:       loan.AreaID,
			Amount:       entry.Amount,
			Date:         date,
			ScheduleKind: scheduleKind,
			AgentName:    entry.AgentName,
		})
	}

	return result
}
