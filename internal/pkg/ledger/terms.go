package ledger

import (
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"
	"math"
)

// PeriodCount returns the number of repayment periods for the loan's declared
// schedule. Legacy records sometimes carry only numberOfDays, so weekly and
// monthly loans fall back to a deterministic derivation from days. The
// fallback must stay stable across calls because penalty accrual divides the
// flat interest by this count.
func PeriodCount(loan models.Loan) int {
	switch loan.ScheduleKind {
	case consts.ScheduleDaily:
		return loan.NumberOfDays
	case consts.ScheduleWeekly:
		if loan.NumberOfWeeks > 0 {
			return loan.NumberOfWeeks
		}
		return int(math.Ceil(float64(loan.NumberOfDays) / 7))
	case consts.ScheduleMonthly:
		if loan.NumberOfMonths > 0 {
			return loan.NumberOfMonths
		}
		return int(math.Ceil(float64(loan.NumberOfDays) / 30))
	}
	return 0
}

// PeriodCountInDays is the daily-equivalent term length, used for linear
// interest accrual on the balance sheet.
func PeriodCountInDays(loan models.Loan) int {
	if loan.NumberOfDays > 0 {
		return loan.NumberOfDays
	}
	if loan.NumberOfWeeks > 0 {
		return loan.NumberOfWeeks * 7
	}
	if loan.NumberOfMonths > 0 {
		return loan.NumberOfMonths * 30
	}
	return 0
}

// ComputeTerms recomputes every derived field from the raw terms. It is
// invoked in full on create and on every edit rather than patching fields
// incrementally, so the derived values can never drift from the terms.
//
// Monthly deadlines use calendar month arithmetic while monthly penalty
// accrual uses 30-day blocks. The mismatch is inherited behavior and is kept.
func ComputeTerms(loan *models.Loan) error {
	periodCount := PeriodCount(*loan)
	if periodCount <= 0 || loan.Principal <= 0 {
		return consts.ErrorInvalidTerm
	}

	loan.TotalPayable = loan.Principal + loan.InterestAmount
	loan.InstallmentAmount = loan.TotalPayable / float64(periodCount)
	loan.InterestPercent = loan.InterestAmount / loan.Principal * 100

	switch loan.ScheduleKind {
	case consts.ScheduleDaily:
		loan.DeadlineDate = loan.IssuedDate.AddDate(0, 0, periodCount)
	case consts.ScheduleWeekly:
		loan.DeadlineDate = loan.IssuedDate.AddDate(0, 0, periodCount*7)
	case consts.ScheduleMonthly:
		loan.DeadlineDate = loan.IssuedDate.AddDate(0, periodCount, 0)
	default:
		return consts.ErrorInvalidScheduleKind
	}

	return nil
}
