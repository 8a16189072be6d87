package services

import (
	"context"
	"encoding/json"
	"time"

	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/ledger"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"
)

type BalanceSheetService struct {
	loanStore    LoanStoreInterface
	paymentStore PaymentStoreInterface
	redisStore   RedisStoreOperations
}

func NewBalanceSheetService(loanStore LoanStoreInterface, paymentStore PaymentStoreInterface, redisStore RedisStoreOperations) *BalanceSheetService {
	return &BalanceSheetService{
		loanStore:    loanStore,
		paymentStore: paymentStore,
		redisStore:   redisStore,
	}
}

// BalanceSheet builds the per-loan statement as of reportDate. The accrual
// window starts at the loan's issuance unless startDate overrides it. Results
// are cached per serial and window since the figures only move when the
// ledger does.
func (h *BalanceSheetService) BalanceSheet(ctx context.Context, serialNumber string, startDate *time.Time, reportDate time.Time) (*models.BalanceSheetData, error) {

	cacheKey := "balancesheet:" + serialNumber + ":" + reportDate.Format("2006-01-02")
	if startDate != nil {
		cacheKey = cacheKey + ":" + startDate.Format("2006-01-02")
	}

	if h.redisStore != nil {
		if cached, err := h.redisStore.Get(ctx, cacheKey); err == nil {
			if raw, ok := cached.([]byte); ok {
				var sheet models.BalanceSheetData
				if err := json.Unmarshal(raw, &sheet); err == nil {
					return &sheet, nil
				}
			}
		}
	}

	loan, err := h.loanStore.LoanBySerialNumber(ctx, serialNumber)
	if err != nil {
		return nil, err
	}

	payments, err := h.paymentStore.PaymentsByLoanID(ctx, loan.ID)
	if err != nil {
		return nil, err
	}

	windowStart := loan.IssuedDate
	if startDate != nil {
		windowStart = *startDate
	}
	sheet := ledger.BuildBalanceSheet(*loan, payments, windowStart, reportDate)

	if h.redisStore != nil {
		if raw, err := json.Marshal(sheet); err == nil {
			ttl := time.Duration(configs.REPORT_CACHE_TTL_IN_MINUTES) * time.Minute
			if err := h.redisStore.Set(ctx, cacheKey, raw, ttl); err != nil {
				logger.Warn(ctx, "Failed to cache balance sheet %s: %v", cacheKey, err)
			}
		}
	}

	return &sheet, nil
}
