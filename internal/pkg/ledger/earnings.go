package ledger

import (
	"globe/machop_loan_ledger/internal/pkg/models"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanEarnings is the interest recognized for one loan: full interest once
// the whole obligation is collected, plus any overpayment beyond it, or a
// share proportional to how much of the obligation (payable plus penalty)
// has been collected so far.
func LoanEarnings(loan models.Loan, payments []models.Payment) float64 {
	var paid float64
	for _, payment := range payments {
		paid += payment.Amount
	}
	if paid == 0 {
		return 0
	}

	owed := loan.TotalPayable + loan.PenaltyAmount
	if paid >= owed {
		return round2(loan.InterestAmount + (paid - owed))
	}
	if owed <= 0 {
		return 0
	}
	return round2(loan.InterestAmount * (paid / owed))
}

// RecognizeEarnings sums recognized interest across a loan set. Pure
// read-side aggregation; nothing is stored.
func RecognizeEarnings(loans []models.Loan, paymentsByLoan map[primitive.ObjectID][]models.Payment) float64 {
	var total float64
	for _, loan := range loans {
		total += LoanEarnings(loan, paymentsByLoan[loan.ID])
	}
	return round2(total)
}

// PaymentWindowEarnings attributes interest to an arbitrary payment window,
// rating each payment against its loan's principal. This is the basis the
// area cost report uses, deliberately distinct from the owed-based ratio
// above: the cost report asks what a slice of collections earned, not what
// the loan as a whole has realized.
func PaymentWindowEarnings(payments []models.Payment, loanByID map[primitive.ObjectID]models.Loan) float64 {
	var total float64
	for _, payment := range payments {
		loan, ok := loanByID[payment.LoanID]
		if !ok || loan.Principal <= 0 {
			continue
		}
		ratio := math.Min(payment.Amount/loan.Principal, 1)
		total += round2(ratio * loan.InterestAmount)
	}
	return round2(total)
}
