package ledger

import (
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"
	"time"
)

// AccruePenalty adds the overdue penalty earned since the last accrual run
// and returns the increment. It runs opportunistically over the whole
// portfolio, so a loan with no deadline is skipped rather than rejected.
//
// Weekly and monthly schedules only accrue on whole elapsed periods. When the
// elapsed days do not yet fill a period, lastPenaltyCalculated is left alone
// so the partial period is reconsidered on the next run instead of being
// dropped for good.
func AccruePenalty(loan *models.Loan, now time.Time) float64 {
	if loan.DeadlineDate.IsZero() || !now.After(loan.DeadlineDate) {
		return 0
	}

	since := loan.DeadlineDate
	if loan.LastPenaltyCalculated != nil {
		since = *loan.LastPenaltyCalculated
	}

	daysElapsed := int(now.Sub(since).Hours() / 24)
	if daysElapsed <= 0 {
		return 0
	}

	periodCount := PeriodCount(*loan)
	if periodCount <= 0 {
		return 0
	}
	perPeriodRate := loan.InterestAmount / float64(periodCount)

	var increment float64
	switch loan.ScheduleKind {
	case consts.ScheduleDaily:
		increment = perPeriodRate * float64(daysElapsed)
	case consts.ScheduleWeekly:
		increment = perPeriodRate * float64(daysElapsed/7)
	case consts.ScheduleMonthly:
		increment = perPeriodRate * float64(daysElapsed/30)
	}

	if increment > 0 {
		loan.PenaltyAmount += increment
		accruedAt := now
		loan.LastPenaltyCalculated = &accruedAt
	}

	return increment
}
