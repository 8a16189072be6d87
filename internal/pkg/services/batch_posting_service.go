package services

import (
	"context"
	"time"

	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/ledger"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BatchPostingService struct {
	loanStore       LoanStoreInterface
	paymentStore    PaymentStoreInterface
	batchGuardStore BatchGuardStoreInterface
	kafkaService    KafkaServiceInterface
}

func NewBatchPostingService(loanStore LoanStoreInterface, paymentStore PaymentStoreInterface, batchGuardStore BatchGuardStoreInterface, kafkaService KafkaServiceInterface) *BatchPostingService {
	return &BatchPostingService{
		loanStore:       loanStore,
		paymentStore:    paymentStore,
		batchGuardStore: batchGuardStore,
		kafkaService:    kafkaService,
	}
}

// ProcessBatch posts one collection run. Staging is all-or-nothing for the
// valid entries: if the bulk insert fails partway, every inserted row is
// rolled back. Invalid entries are reported per serial and never block the
// rest of the run. A TTL-guarded marker keeps the same run from being posted
// twice concurrently.
func (h *BatchPostingService) ProcessBatch(ctx context.Context, request models.BatchPostingRequest) (*models.BatchResult, error) {

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}

	if !consts.IsValidScheduleKind(request.ScheduleKind) {
		return nil, consts.ErrorInvalidScheduleKind
	}

	batchKey := request.Date + "|" + request.ScheduleKind
	if request.AreaID != "" {
		if !utils.IsValidObjectIDHex(request.AreaID) {
			return nil, consts.ErrorAreaNotFound
		}
		batchKey = batchKey + "|" + request.AreaID
	}

	inProgress, err := h.batchGuardStore.IsBatchInProgress(ctx, batchKey)
	if err != nil {
		return nil, err
	}
	if inProgress {
		return nil, consts.ErrorBatchInProgress
	}

	if _, err := h.batchGuardStore.CreateBatchInProgressEntry(ctx, common.SerializeBatchInProgress(batchKey)); err != nil {
		return nil, err
	}
	defer func() {
		if _, err := h.batchGuardStore.DeleteBatchInProgressByKey(ctx, batchKey); err != nil {
			logger.Error(ctx, "Failed to release batch guard %s: %v", batchKey, err)
		}
	}()

	resolver := func(serialNumber string) (models.Loan, bool) {
		loan, err := h.loanStore.LoanBySerialNumber(ctx, serialNumber)
		if err != nil {
			return models.Loan{}, false
		}
		return *loan, true
	}

	result := ledger.StageBatch(date, request.ScheduleKind, request.Entries, resolver)
	if len(result.SuccessfulPayments) == 0 {
		return &result, nil
	}

	payments := common.SerializeBatchPayments(result.SuccessfulPayments, result.BatchID)

	insertedIDs, err := h.paymentStore.InsertPayments(ctx, payments)
	if err != nil {
		logger.Error(ctx, "Batch %s insert failed after %d rows, rolling back: %v", result.BatchID, len(insertedIDs), err)
		if len(insertedIDs) > 0 {
			if _, rollbackErr := h.paymentStore.DeletePaymentsByIDs(ctx, insertedIDs); rollbackErr != nil {
				logger.Error(ctx, "Rollback of batch %s failed: %v", result.BatchID, rollbackErr)
			}
		}
		return nil, consts.ErrorBatchPartialFailure
	}

	for _, staged := range result.SuccessfulPayments {
		if err := h.reconcileLoan(ctx, staged); err != nil {
			logger.Error(ctx, "Failed to reconcile loan %s after batch %s: %v", staged.SerialNumber, result.BatchID, err)
		}
	}

	logger.Info(ctx, "Batch %s committed: %d staged %d failed", result.BatchID, len(result.SuccessfulPayments), len(result.FailedPayments))

	go h.publishBatchEvents(payments)

	return &result, nil
}

func (h *BatchPostingService) reconcileLoan(ctx context.Context, staged models.StagedPayment) error {

	loan, err := h.loanStore.LoanByID(ctx, staged.LoanID)
	if err != nil {
		return err
	}

	payments, err := h.paymentStore.PaymentsByLoanID(ctx, loan.ID)
	if err != nil {
		return err
	}
	ledger.Reconcile(loan, payments)

	loan.UpdatedAt = time.Now()
	return h.loanStore.UpdateLoan(ctx, *loan)
}

func (h *BatchPostingService) publishBatchEvents(payments []models.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, payment := range payments {
		loan, err := h.loanStore.LoanByID(ctx, payment.LoanID)
		if err != nil {
			logger.Error(ctx, "Failed to load loan %s for batch event: %v", payment.SerialNumber, err)
			continue
		}

		event := common.SerializeLedgerEvent(consts.PaymentCommitted, *loan, payment.Amount)
		if err := h.kafkaService.PublishLedgerEventToKafka(ctx, payment.ID.Hex(), event); err != nil {
			logger.Error(ctx, "Failed to publish batch event for payment %s: %v", payment.ID.Hex(), err)
			continue
		}

		if _, err := h.paymentStore.MarkPublishedToKafka(ctx, []primitive.ObjectID{payment.ID}); err != nil {
			logger.Error(ctx, "Failed to flag payment %s as published: %v", payment.ID.Hex(), err)
		}
	}
}
