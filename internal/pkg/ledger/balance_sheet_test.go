package ledger

import (
	"testing"
	"time"

	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"

	"github.com/stretchr/testify/assert"
)

func balanceSheetFixture() models.Loan {
	return models.Loan{
		CustomerName:   "Dela Cruz",
		SerialNumber:   "A-100",
		Principal:      1000,
		InterestAmount: 100,
		IssuedDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ScheduleKind:   consts.ScheduleDaily,
		NumberOfDays:   10,
		TotalPayable:   1100,
		DeadlineDate:   time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildBalanceSheet(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("statement balances for arbitrary fixtures", func(t *testing.T) {
		fixtures := []struct {
			name     string
			payments []models.Payment
			report   time.Time
		}{
			{"no payments mid-term", nil, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
			{"partial", []models.Payment{{Amount: 400, Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)}}, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
			{"settled", []models.Payment{{Amount: 1100, Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)}}, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)},
			{"overpaid past term", []models.Payment{{Amount: 1300, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)}}, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		}

		for _, fixture := range fixtures {
			t.Run(fixture.name, func(t *testing.T) {
				sheet := BuildBalanceSheet(balanceSheetFixture(), fixture.payments, start, fixture.report)
				assert.InDelta(t,
					sheet.Assets.TotalAssets,
					sheet.Equity.TotalEquity+sheet.Liabilities.TotalLiabilities,
					1e-9)
			})
		}
	})

	t.Run("interest accrues linearly and caps at the contract", func(t *testing.T) {
		loan := balanceSheetFixture()

		midTerm := BuildBalanceSheet(loan, nil, start, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, 50.0, midTerm.TransactionSummary.AccruedInterest, 1e-9)

		pastTerm := BuildBalanceSheet(loan, nil, start, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, 100.0, pastTerm.TransactionSummary.AccruedInterest, 1e-9)
	})

	t.Run("payments outside the window are excluded", func(t *testing.T) {
		loan := balanceSheetFixture()
		payments := []models.Payment{
			{Amount: 300, Date: time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)},
			{Amount: 400, Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)},
			{Amount: 200, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		}

		sheet := BuildBalanceSheet(loan, payments, start, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, 400.0, sheet.TransactionSummary.TotalRepaid, 1e-9)
	})

	t.Run("receivables carry outstanding principal plus unpaid accrued interest", func(t *testing.T) {
		loan := balanceSheetFixture()
		payments := []models.Payment{{Amount: 400, Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)}}
		report := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

		sheet := BuildBalanceSheet(loan, payments, start, report)
		// outstanding principal 600; accrued 50, paid interest 100*(400/1100)
		paidInterest := 100.0 * (400.0 / 1100.0)
		assert.InDelta(t, 600.0+(50.0-paidInterest), sheet.Assets.CurrentAssets.Receivables, 1e-9)
		assert.InDelta(t, 50.0-paidInterest, sheet.Liabilities.CurrentLiabilities.AccruedInterest, 1e-9)
	})

	t.Run("retained earnings go negative before principal is recovered", func(t *testing.T) {
		loan := balanceSheetFixture()
		payments := []models.Payment{{Amount: 400, Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)}}

		sheet := BuildBalanceSheet(loan, payments, start, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
		assert.InDelta(t, -600.0, sheet.Equity.RetainedEarnings, 1e-9)
	})

	t.Run("report date before issue accrues nothing", func(t *testing.T) {
		loan := balanceSheetFixture()
		sheet := BuildBalanceSheet(loan, nil, start, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 0.0, sheet.TransactionSummary.AccruedInterest)
	})
}
