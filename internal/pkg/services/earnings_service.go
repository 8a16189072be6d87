package services

import (
	"context"
	"encoding/json"
	"time"

	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/ledger"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EarningsService struct {
	loanStore    LoanStoreInterface
	paymentStore PaymentStoreInterface
	redisStore   RedisStoreOperations
}

func NewEarningsService(loanStore LoanStoreInterface, paymentStore PaymentStoreInterface, redisStore RedisStoreOperations) *EarningsService {
	return &EarningsService{
		loanStore:    loanStore,
		paymentStore: paymentStore,
		redisStore:   redisStore,
	}
}

// EarningsForWindow recognizes interest earnings over the payments dated in
// [from, to). Fully settled loans recognize full interest plus overpayment;
// partially paid loans recognize interest pro rata to what was paid. Reports
// are cached briefly keyed by the window.
func (h *EarningsService) EarningsForWindow(ctx context.Context, from, to time.Time) (*models.EarningsReport, error) {

	cacheKey := "earnings:" + from.Format("2006-01-02") + ":" + to.Format("2006-01-02")

	if h.redisStore != nil {
		if cached, err := h.redisStore.Get(ctx, cacheKey); err == nil {
			if raw, ok := cached.([]byte); ok {
				var report models.EarningsReport
				if err := json.Unmarshal(raw, &report); err == nil {
					return &report, nil
				}
			}
		}
	}

	payments, err := h.paymentStore.PaymentsInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	paymentsByLoan := make(map[primitive.ObjectID][]models.Payment)
	for _, payment := range payments {
		paymentsByLoan[payment.LoanID] = append(paymentsByLoan[payment.LoanID], payment)
	}

	loans := make([]models.Loan, 0, len(paymentsByLoan))
	for loanID := range paymentsByLoan {
		loan, err := h.loanStore.LoanByID(ctx, loanID)
		if err != nil {
			logger.Warn(ctx, "Skipping earnings for missing loan %s: %v", loanID.Hex(), err)
			continue
		}
		loans = append(loans, *loan)
	}

	report := models.EarningsReport{
		From:     from,
		To:       to,
		Earnings: ledger.RecognizeEarnings(loans, paymentsByLoan),
		Payments: len(payments),
	}

	if h.redisStore != nil {
		if raw, err := json.Marshal(report); err == nil {
			ttl := time.Duration(configs.REPORT_CACHE_TTL_IN_MINUTES) * time.Minute
			if err := h.redisStore.Set(ctx, cacheKey, raw, ttl); err != nil {
				logger.Warn(ctx, "Failed to cache earnings report: %v", err)
			}
		}
	}

	return &report, nil
}

// Dashboard aggregates portfolio-wide ledger totals. Cached briefly since it
// walks every loan.
func (h *EarningsService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {

	const cacheKey = "dashboard:summary"

	if h.redisStore != nil {
		if cached, err := h.redisStore.Get(ctx, cacheKey); err == nil {
			if raw, ok := cached.([]byte); ok {
				var summary models.DashboardSummary
				if err := json.Unmarshal(raw, &summary); err == nil {
					return &summary, nil
				}
			}
		}
	}

	loans, err := h.loanStore.AllLoans(ctx)
	if err != nil {
		return nil, err
	}

	summary := models.DashboardSummary{TotalLoans: len(loans)}
	for _, loan := range loans {
		owed := loan.TotalPayable + loan.PenaltyAmount
		summary.TotalAmountDue += owed
		summary.TotalAmountPaid += loan.TotalPaid
		summary.TotalInterestAmount += loan.InterestAmount
		summary.TotalPenaltyAmount += loan.PenaltyAmount
		if !loan.IsFullyPaid {
			summary.ActiveLoans++
			summary.RemainingAmount += owed - loan.TotalPaid
		}
	}

	if h.redisStore != nil {
		if raw, err := json.Marshal(summary); err == nil {
			ttl := time.Duration(configs.REPORT_CACHE_TTL_IN_MINUTES) * time.Minute
			if err := h.redisStore.Set(ctx, cacheKey, raw, ttl); err != nil {
				logger.Warn(ctx, "Failed to cache dashboard summary: %v", err)
			}
		}
	}

	return &summary, nil
}
