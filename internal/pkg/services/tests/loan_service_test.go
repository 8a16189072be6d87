package tests

import (
	"context"
	"testing"
	"time"

	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateLoan(t *testing.T) {

	tests := []struct {
		name          string
		request       models.CreateLoanRequest
		setupMocks    func(*MockLoanStore, *MockPaymentStore)
		expectedError error
		verify        func(*testing.T, *models.Loan)
	}{
		{
			name: "Success - Daily Loan Terms Derived",
			request: models.CreateLoanRequest{
				SerialNumber:   "LN-1001",
				CustomerName:   "Maria Santos",
				Principal:      1000,
				InterestAmount: 100,
				IssuedDate:     "2024-01-01",
				ScheduleKind:   "daily",
				NumberOfDays:   10,
			},
			setupMocks: func(ls *MockLoanStore, ps *MockPaymentStore) {
				ls.On("LoanBySerialNumber", mock.Anything, "LN-1001").Return(nil, consts.ErrorLoanNotFound)
				ls.On("InsertLoan", mock.Anything, mock.AnythingOfType("models.Loan")).Return(true, nil)
			},
			expectedError: nil,
			verify: func(t *testing.T, loan *models.Loan) {
				assert.Equal(t, 1100.0, loan.TotalPayable)
				assert.Equal(t, 110.0, loan.InstallmentAmount)
				assert.Equal(t, 10.0, loan.InterestPercent)
				assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), loan.DeadlineDate)
			},
		},
		{
			name: "Duplicate Serial Number",
			request: models.CreateLoanRequest{
				SerialNumber:   "LN-1001",
				CustomerName:   "Maria Santos",
				Principal:      1000,
				InterestAmount: 100,
				IssuedDate:     "2024-01-01",
				ScheduleKind:   "daily",
				NumberOfDays:   10,
			},
			setupMocks: func(ls *MockLoanStore, ps *MockPaymentStore) {
				existing := &models.Loan{ID: primitive.NewObjectID(), SerialNumber: "LN-1001"}
				ls.On("LoanBySerialNumber", mock.Anything, "LN-1001").Return(existing, nil)
			},
			expectedError: consts.ErrorDuplicateSerialNumber,
		},
		{
			name: "Invalid Schedule Kind",
			request: models.CreateLoanRequest{
				SerialNumber:   "LN-1002",
				CustomerName:   "Maria Santos",
				Principal:      1000,
				InterestAmount: 100,
				IssuedDate:     "2024-01-01",
				ScheduleKind:   "fortnightly",
				NumberOfDays:   10,
			},
			setupMocks:    func(ls *MockLoanStore, ps *MockPaymentStore) {},
			expectedError: consts.ErrorInvalidScheduleKind,
		},
		{
			name: "Invalid Serial Number",
			request: models.CreateLoanRequest{
				SerialNumber:   "LN 1002!",
				CustomerName:   "Maria Santos",
				Principal:      1000,
				InterestAmount: 100,
				IssuedDate:     "2024-01-01",
				ScheduleKind:   "daily",
				NumberOfDays:   10,
			},
			setupMocks:    func(ls *MockLoanStore, ps *MockPaymentStore) {},
			expectedError: consts.ErrorInvalidSerialNumber,
		},
		{
			name: "Zero Principal Rejected",
			request: models.CreateLoanRequest{
				SerialNumber:   "LN-1003",
				CustomerName:   "Maria Santos",
				Principal:      0,
				InterestAmount: 100,
				IssuedDate:     "2024-01-01",
				ScheduleKind:   "daily",
				NumberOfDays:   10,
			},
			setupMocks: func(ls *MockLoanStore, ps *MockPaymentStore) {
				ls.On("LoanBySerialNumber", mock.Anything, "LN-1003").Return(nil, consts.ErrorLoanNotFound)
			},
			expectedError: consts.ErrorInvalidTerm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLoanStore := new(MockLoanStore)
			mockPaymentStore := new(MockPaymentStore)
			tt.setupMocks(mockLoanStore, mockPaymentStore)

			service := services.NewLoanService(mockLoanStore, mockPaymentStore)

			loan, err := service.CreateLoan(context.Background(), tt.request)

			assert.Equal(t, tt.expectedError, err)
			if tt.expectedError == nil && tt.verify != nil {
				tt.verify(t, loan)
			}

			mockLoanStore.AssertExpectations(t)
		})
	}
}

func TestUpdateLoanRecomputesAndReconciles(t *testing.T) {

	loanID := primitive.NewObjectID()
	existing := &models.Loan{
		ID:             loanID,
		SerialNumber:   "LN-2001",
		CustomerName:   "Jose Cruz",
		Principal:      1000,
		InterestAmount: 100,
		IssuedDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ScheduleKind:   "daily",
		NumberOfDays:   10,
		TotalPayable:   1100,
		PenaltyAmount:  50,
	}

	mockLoanStore := new(MockLoanStore)
	mockPaymentStore := new(MockPaymentStore)

	mockLoanStore.On("LoanBySerialNumber", mock.Anything, "LN-2001").Return(existing, nil)
	mockPaymentStore.On("PaymentsByLoanID", mock.Anything, loanID).Return([]models.Payment{
		{LoanID: loanID, Amount: 600},
	}, nil)
	mockLoanStore.On("UpdateLoan", mock.Anything, mock.AnythingOfType("models.Loan")).Return(nil)

	service := services.NewLoanService(mockLoanStore, mockPaymentStore)

	loan, err := service.UpdateLoan(context.Background(), "LN-2001", models.UpdateLoanRequest{
		NumberOfDays: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1100.0, loan.TotalPayable)
	assert.Equal(t, 55.0, loan.InstallmentAmount)
	assert.Equal(t, time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), loan.DeadlineDate)
	assert.Equal(t, 600.0, loan.TotalPaid)
	assert.False(t, loan.IsFullyPaid)
	// Accrued penalty survives a term edit.
	assert.Equal(t, 50.0, loan.PenaltyAmount)

	mockLoanStore.AssertExpectations(t)
	mockPaymentStore.AssertExpectations(t)
}

func TestDeleteLoanCascadesPayments(t *testing.T) {

	loanID := primitive.NewObjectID()
	existing := &models.Loan{ID: loanID, SerialNumber: "LN-3001"}

	mockLoanStore := new(MockLoanStore)
	mockPaymentStore := new(MockPaymentStore)

	mockLoanStore.On("LoanBySerialNumber", mock.Anything, "LN-3001").Return(existing, nil)
	mockPaymentStore.On("DeletePaymentsByLoanID", mock.Anything, loanID).Return(int64(3), nil)
	mockLoanStore.On("DeleteLoan", mock.Anything, loanID).Return(nil)

	service := services.NewLoanService(mockLoanStore, mockPaymentStore)

	err := service.DeleteLoan(context.Background(), "LN-3001")

	assert.NoError(t, err)
	mockLoanStore.AssertExpectations(t)
	mockPaymentStore.AssertExpectations(t)
}
