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

type LoanService struct {
	loanStore    LoanStoreInterface
	paymentStore PaymentStoreInterface
}

func NewLoanService(loanStore LoanStoreInterface, paymentStore PaymentStoreInterface) *LoanService {
	return &LoanService{
		loanStore:    loanStore,
		paymentStore: paymentStore,
	}
}

func (h *LoanService) CreateLoan(ctx context.Context, request models.CreateLoanRequest) (*models.Loan, error) {

	serialNumber, err := utils.ValidateSerialNumber(request.SerialNumber)
	if err != nil {
		return nil, err
	}

	if !consts.IsValidScheduleKind(request.ScheduleKind) {
		return nil, consts.ErrorInvalidScheduleKind
	}

	issuedDate, err := utils.ParseDate(request.IssuedDate)
	if err != nil {
		return nil, err
	}

	if _, err := h.loanStore.LoanBySerialNumber(ctx, serialNumber); err == nil {
		return nil, consts.ErrorDuplicateSerialNumber
	} else if err != consts.ErrorLoanNotFound {
		return nil, err
	}

	areaID := primitive.NilObjectID
	if request.AreaID != "" {
		if !utils.IsValidObjectIDHex(request.AreaID) {
			return nil, consts.ErrorAreaNotFound
		}
		areaID, _ = primitive.ObjectIDFromHex(request.AreaID)
	}

	loan := common.SerializeLoan(serialNumber, request.CustomerName, areaID, request.Principal, request.InterestAmount, issuedDate, request.ScheduleKind, request.NumberOfDays, request.NumberOfWeeks, request.NumberOfMonths)

	if err := ledger.ComputeTerms(&loan); err != nil {
		return nil, err
	}

	if _, err := h.loanStore.InsertLoan(ctx, loan); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Loan created serial: %s principal: %.2f schedule: %s", loan.SerialNumber, loan.Principal, loan.ScheduleKind)
	return &loan, nil
}

// UpdateLoan edits the loan's terms and recomputes every derived field, then
// reconciles against the full payment history so the ledger state matches the
// new obligation. Accrued penalty survives a term edit.
func (h *LoanService) UpdateLoan(ctx context.Context, serialNumber string, request models.UpdateLoanRequest) (*models.Loan, error) {

	loan, err := h.loanStore.LoanBySerialNumber(ctx, serialNumber)
	if err != nil {
		return nil, err
	}

	if request.CustomerName != "" {
		loan.CustomerName = request.CustomerName
	}
	if request.AreaID != "" {
		if !utils.IsValidObjectIDHex(request.AreaID) {
			return nil, consts.ErrorAreaNotFound
		}
		loan.AreaID, _ = primitive.ObjectIDFromHex(request.AreaID)
	}
	if request.Principal > 0 {
		loan.Principal = request.Principal
	}
	if request.InterestAmount > 0 {
		loan.InterestAmount = request.InterestAmount
	}
	if request.IssuedDate != "" {
		issuedDate, err := utils.ParseDate(request.IssuedDate)
		if err != nil {
			return nil, err
		}
		loan.IssuedDate = issuedDate
	}
	if request.ScheduleKind != "" {
		if !consts.IsValidScheduleKind(request.ScheduleKind) {
			return nil, consts.ErrorInvalidScheduleKind
		}
		loan.ScheduleKind = request.ScheduleKind
	}
	if request.NumberOfDays > 0 {
		loan.NumberOfDays = request.NumberOfDays
	}
	if request.NumberOfWeeks > 0 {
		loan.NumberOfWeeks = request.NumberOfWeeks
	}
	if request.NumberOfMonths > 0 {
		loan.NumberOfMonths = request.NumberOfMonths
	}

	if err := ledger.ComputeTerms(loan); err != nil {
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

	logger.Info(ctx, "Loan updated serial: %s totalPayable: %.2f", loan.SerialNumber, loan.TotalPayable)
	return loan, nil
}

func (h *LoanService) LoanBySerialNumber(ctx context.Context, serialNumber string) (*models.Loan, error) {
	return h.loanStore.LoanBySerialNumber(ctx, serialNumber)
}

func (h *LoanService) AllLoans(ctx context.Context) ([]models.Loan, error) {
	return h.loanStore.AllLoans(ctx)
}

// DeleteLoan removes the loan and cascades to its payments, so no payment
// ever references a missing loan.
func (h *LoanService) DeleteLoan(ctx context.Context, serialNumber string) error {

	loan, err := h.loanStore.LoanBySerialNumber(ctx, serialNumber)
	if err != nil {
		return err
	}

	deleted, err := h.paymentStore.DeletePaymentsByLoanID(ctx, loan.ID)
	if err != nil {
		return err
	}

	if err := h.loanStore.DeleteLoan(ctx, loan.ID); err != nil {
		return err
	}

	logger.Info(ctx, "Loan deleted serial: %s cascadedPayments: %d", serialNumber, deleted)
	return nil
}
