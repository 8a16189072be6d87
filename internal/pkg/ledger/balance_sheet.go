package ledger

import (
	"globe/machop_loan_ledger/internal/pkg/models"
	"math"
	"time"
)

// BuildBalanceSheet produces the accrual balance sheet for one loan as of
// reportDate, from the financier's perspective: capital deployed is an
// investment, receivables carry outstanding principal plus interest accrued
// but not yet covered by payments.
//
// Interest accrues linearly over the daily-equivalent term and caps at the
// contracted amount. Paid interest uses the totalPayable ratio, a different
// basis than LoanEarnings' owed ratio; the two views are kept distinct on
// purpose (statutory statement vs cash earnings).
func BuildBalanceSheet(loan models.Loan, payments []models.Payment, startDate, reportDate time.Time) models.BalanceSheetData {
	var rawTotal float64
	for _, payment := range payments {
		if payment.Date.Before(startDate) || payment.Date.After(reportDate) {
			continue
		}
		rawTotal += payment.Amount
	}

	owed := loan.TotalPayable + loan.PenaltyAmount
	totalPaid := math.Min(rawTotal, owed)
	outstandingPrincipal := math.Max(0, loan.Principal-totalPaid)

	daysPassed := int(reportDate.Sub(loan.IssuedDate).Hours() / 24)
	if daysPassed < 0 {
		daysPassed = 0
	}

	var accruedInterest float64
	if termDays := PeriodCountInDays(loan); termDays > 0 {
		dailyInterest := loan.InterestAmount / float64(termDays)
		accruedInterest = math.Min(dailyInterest*float64(daysPassed), loan.InterestAmount)
	}

	var paymentRatio float64
	if loan.TotalPayable > 0 {
		paymentRatio = totalPaid / loan.TotalPayable
	}
	paidInterest := loan.InterestAmount * paymentRatio
	unpaidAccruedInterest := math.Max(0, accruedInterest-paidInterest)

	receivables := outstandingPrincipal + unpaidAccruedInterest
	investments := loan.Principal
	totalAssets := receivables + investments

	totalLiabilities := unpaidAccruedInterest

	paidUpCapital := loan.Principal
	retainedEarnings := totalPaid - loan.Principal
	// Reserves is the balancing figure: it absorbs the timing difference
	// between capital deployed and collections so the statement balances.
	reservesAndSurplus := totalAssets - totalLiabilities - paidUpCapital - retainedEarnings
	totalEquity := paidUpCapital + retainedEarnings + reservesAndSurplus

	return models.BalanceSheetData{
		CustomerName: loan.CustomerName,
		SerialNumber: loan.SerialNumber,
		ReportDate:   reportDate,
		Assets: models.Assets{
			CurrentAssets: models.CurrentAssets{
				Cash:               0,
				Receivables:        receivables,
				OtherCurrentAssets: 0,
				TotalCurrentAssets: receivables,
			},
			FixedAssets: models.FixedAssets{
				Investments:      investments,
				OtherFixedAssets: 0,
				TotalFixedAssets: investments,
			},
			TotalAssets: totalAssets,
		},
		Liabilities: models.Liabilities{
			CurrentLiabilities: models.CurrentLiabilities{
				ShortTermLoans:          0,
				Payables:                0,
				AccruedInterest:         unpaidAccruedInterest,
				AccruedExpenses:         0,
				TotalCurrentLiabilities: unpaidAccruedInterest,
			},
			LongTermLiabilities: models.LongTermLiabilities{},
			TotalLiabilities:    totalLiabilities,
		},
		Equity: models.Equity{
			PaidUpCapital:      paidUpCapital,
			RetainedEarnings:   retainedEarnings,
			ReservesAndSurplus: reservesAndSurplus,
			TotalEquity:        totalEquity,
		},
		TransactionSummary: models.TransactionSummary{
			TotalBorrowed:      loan.Principal,
			TotalRepaid:        totalPaid,
			OutstandingBalance: math.Max(0, owed-totalPaid),
			AccruedInterest:    accruedInterest,
			PaidInterest:       paidInterest,
		},
	}
}
