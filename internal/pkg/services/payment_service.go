package services

import (
	"context"
	"time"

	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/ledger"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentService struct {
	loanStore           LoanStoreInterface
	paymentStore        PaymentStoreInterface
	kafkaService        KafkaServiceInterface
	notificationService ReceiptNotifierInterface
}

func NewPaymentService(loanStore LoanStoreInterface, paymentStore PaymentStoreInterface, kafkaService KafkaServiceInterface, notificationService ReceiptNotifierInterface) *PaymentService {
	return &PaymentService{
		loanStore:           loanStore,
		paymentStore:        paymentStore,
		kafkaService:        kafkaService,
		notificationService: notificationService,
	}
}

// AddPayment commits one payment and reconciles the owning loan from its full
// payment history. Overpayment is allowed; the ledger caps what is stored on
// the loan. Publishing and the customer receipt happen off the request path.
func (h *PaymentService) AddPayment(ctx context.Context, request models.AddPaymentRequest) (*models.Payment, *models.Loan, error) {

	if request.Amount <= 0 {
		return nil, nil, consts.ErrorInvalidAmount
	}

	loan, err := h.loanStore.LoanBySerialNumber(ctx, request.SerialNumber)
	if err != nil {
		return nil, nil, err
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, nil, err
	}

	if request.ScheduleKind != "" && !consts.IsValidScheduleKind(request.ScheduleKind) {
		return nil, nil, consts.ErrorInvalidScheduleKind
	}

	payment := common.SerializePayment(*loan, request.Amount, date, request.ScheduleKind, request.AgentName, "")

	if _, err := h.paymentStore.InsertPayment(ctx, payment); err != nil {
		return nil, nil, err
	}

	payments, err := h.paymentStore.PaymentsByLoanID(ctx, loan.ID)
	if err != nil {
		return nil, nil, err
	}
	ledger.Reconcile(loan, payments)

	loan.UpdatedAt = time.Now()
	if err := h.loanStore.UpdateLoan(ctx, *loan); err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "Payment committed serial: %s amount: %.2f totalPaid: %.2f fullyPaid: %t", loan.SerialNumber, payment.Amount, loan.TotalPaid, loan.IsFullyPaid)

	go h.publishLedgerEvent(payment, *loan, consts.PaymentCommitted)
	go h.notificationService.NotifyReceipt(context.WithoutCancel(ctx), *loan, payment)

	return &payment, loan, nil
}

// DeletePayment removes a payment and reconciles the owning loan against the
// remaining history.
func (h *PaymentService) DeletePayment(ctx context.Context, paymentID string) (*models.Loan, error) {

	id, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return nil, consts.ErrorPaymentNotFound
	}

	payment, err := h.paymentStore.PaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := h.paymentStore.DeletePayment(ctx, id); err != nil {
		return nil, err
	}

	loan, err := h.loanStore.LoanByID(ctx, payment.LoanID)
	if err != nil {
		return nil, err
	}

	payments, err := h.paymentStore.PaymentsByLoanID(ctx, loan.ID)
	if err != nil {
		return nil, err
	}
	ledger.Reconcile(loan, payments)

	loan.UpdatedAt = time.Now()
	if err := h.loanStore.UpdateLoan(ctx, *loan); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Payment deleted serial: %s paymentId: %s totalPaid: %.2f", loan.SerialNumber, paymentID, loan.TotalPaid)

	go h.publishLedgerEvent(*payment, *loan, consts.PaymentDeleted)

	return loan, nil
}

func (h *PaymentService) publishLedgerEvent(payment models.Payment, loan models.Loan, eventType string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.TIMEOUT_IN_SECONDS)*time.Second)
	defer cancel()

	event := common.SerializeLedgerEvent(eventType, loan, payment.Amount)
	if err := h.kafkaService.PublishLedgerEventToKafka(ctx, payment.ID.Hex(), event); err != nil {
		logger.Error(ctx, "Failed to publish ledger event for payment %s: %v", payment.ID.Hex(), err)
		return
	}

	if eventType == consts.PaymentCommitted {
		if _, err := h.paymentStore.MarkPublishedToKafka(ctx, []primitive.ObjectID{payment.ID}); err != nil {
			logger.Error(ctx, "Failed to flag payment %s as published: %v", payment.ID.Hex(), err)
		}
	}
}
