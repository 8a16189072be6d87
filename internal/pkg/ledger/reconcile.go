package ledger

import (
	"globe/machop_loan_ledger/internal/pkg/models"
	"math"
)

// Reconcile recomputes the loan's ledger state from its full payment history.
// Every mutation path goes through here; nothing patches totalPaid by delta,
// which is what keeps the ledger consistent under edits and deletes.
//
// Overpayment is capped on the loan record. The excess is not lost: the
// earnings side recognizes it as realized income.
func Reconcile(loan *models.Loan, payments []models.Payment) {
	var rawTotal float64
	for _, payment := range payments {
		rawTotal += payment.Amount
	}

	owed := loan.TotalPayable + loan.PenaltyAmount
	loan.TotalPaid = math.Min(rawTotal, owed)
	loan.IsFullyPaid = rawTotal >= owed
}
