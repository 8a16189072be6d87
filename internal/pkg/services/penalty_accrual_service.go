package services

import (
	"context"
	"sync"
	"time"

	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/ledger"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/utils/worker"
)

type PenaltyAccrualService struct {
	loanStore    LoanStoreInterface
	paymentStore PaymentStoreInterface
	kafkaService KafkaServiceInterface
	workerPool   *worker.WorkerPool
}

func NewPenaltyAccrualService(loanStore LoanStoreInterface, paymentStore PaymentStoreInterface, kafkaService KafkaServiceInterface, workerPool *worker.WorkerPool) *PenaltyAccrualService {
	return &PenaltyAccrualService{
		loanStore:    loanStore,
		paymentStore: paymentStore,
		kafkaService: kafkaService,
		workerPool:   workerPool,
	}
}

// RunSweep accrues penalties for every unpaid loan past its deadline as of
// now. Loans are fanned out across the worker pool; the sweep is idempotent
// within a day because accrual only advances in whole elapsed periods.
func (h *PenaltyAccrualService) RunSweep(ctx context.Context, now time.Time) (*models.SweepResult, error) {

	loans, err := h.loanStore.OverdueLoans(ctx, now)
	if err != nil {
		return nil, err
	}

	result := models.SweepResult{LoansExamined: len(loans)}
	if len(loans) == 0 {
		return &result, nil
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range loans {
		loan := loans[i]
		wg.Add(1)
		h.workerPool.Submit(func() {
			defer wg.Done()

			increment, err := h.accrueLoan(ctx, loan, now)
			if err != nil {
				logger.Error(ctx, "Penalty accrual failed for loan %s: %v", loan.SerialNumber, err)
				return
			}
			if increment <= 0 {
				return
			}

			mu.Lock()
			result.LoansAccrued++
			result.TotalAccrued += increment
			mu.Unlock()
		})
	}

	wg.Wait()

	logger.Info(ctx, "Penalty sweep examined %d loans, accrued on %d for a total of %.2f", result.LoansExamined, result.LoansAccrued, result.TotalAccrued)

	return &result, nil
}

func (h *PenaltyAccrualService) accrueLoan(ctx context.Context, loan models.Loan, now time.Time) (float64, error) {

	increment := ledger.AccruePenalty(&loan, now)
	if increment <= 0 {
		return 0, nil
	}

	payments, err := h.paymentStore.PaymentsByLoanID(ctx, loan.ID)
	if err != nil {
		return 0, err
	}
	ledger.Reconcile(&loan, payments)

	loan.UpdatedAt = time.Now()
	if err := h.loanStore.UpdateLoan(ctx, loan); err != nil {
		return 0, err
	}

	event := common.SerializeLedgerEvent(consts.PenaltyAccrued, loan, increment)
	if err := h.kafkaService.PublishLedgerEventToKafka(ctx, loan.ID.Hex(), event); err != nil {
		logger.Error(ctx, "Failed to publish penalty event for loan %s: %v", loan.SerialNumber, err)
	}

	return increment, nil
}
