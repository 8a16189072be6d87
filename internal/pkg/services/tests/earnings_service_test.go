package tests

import (
	"context"
	"testing"
	"time"

	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/services"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEarningsForWindow(t *testing.T) {

	settledID := primitive.NewObjectID()
	partialID := primitive.NewObjectID()

	settled := &models.Loan{
		ID:             settledID,
		SerialNumber:   "LN-1001",
		Principal:      1000,
		InterestAmount: 200,
		TotalPayable:   1200,
	}
	partial := &models.Loan{
		ID:             partialID,
		SerialNumber:   "LN-1002",
		Principal:      1000,
		InterestAmount: 100,
		TotalPayable:   1100,
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	mockLoanStore := new(MockLoanStore)
	mockPaymentStore := new(MockPaymentStore)

	mockPaymentStore.On("PaymentsInWindow", mock.Anything, from, to).Return([]models.Payment{
		{LoanID: settledID, Amount: 1300},
		{LoanID: partialID, Amount: 275},
	}, nil)
	mockLoanStore.On("LoanByID", mock.Anything, settledID).Return(settled, nil)
	mockLoanStore.On("LoanByID", mock.Anything, partialID).Return(partial, nil)

	service := services.NewEarningsService(mockLoanStore, mockPaymentStore, nil)

	report, err := service.EarningsForWindow(context.Background(), from, to)

	assert.NoError(t, err)
	// Settled loan: 200 interest + 100 overpayment. Partial: 100 * 275/1100.
	assert.Equal(t, 325.0, report.Earnings)
	assert.Equal(t, 2, report.Payments)

	mockPaymentStore.AssertExpectations(t)
	mockLoanStore.AssertExpectations(t)
}

func TestEarningsForWindowUsesCache(t *testing.T) {

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	cacheKey := "earnings:2024-01-01:2024-01-02"

	t.Run("miss computes and caches", func(t *testing.T) {
		mockLoanStore := new(MockLoanStore)
		mockPaymentStore := new(MockPaymentStore)
		mockRedisStore := new(MockRedisStore)

		mockRedisStore.On("Get", mock.Anything, cacheKey).Return(nil, redis.Nil)
		mockRedisStore.On("Set", mock.Anything, cacheKey, mock.Anything, mock.AnythingOfType("time.Duration")).Return(nil)
		mockPaymentStore.On("PaymentsInWindow", mock.Anything, from, to).Return([]models.Payment{}, nil)

		service := services.NewEarningsService(mockLoanStore, mockPaymentStore, mockRedisStore)

		report, err := service.EarningsForWindow(context.Background(), from, to)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Payments)

		mockRedisStore.AssertExpectations(t)
		mockPaymentStore.AssertExpectations(t)
	})

	t.Run("hit skips the stores", func(t *testing.T) {
		mockLoanStore := new(MockLoanStore)
		mockPaymentStore := new(MockPaymentStore)
		mockRedisStore := new(MockRedisStore)

		mockRedisStore.On("Get", mock.Anything, cacheKey).Return(
			[]byte(`{"from":"2024-01-01T00:00:00Z","to":"2024-01-02T00:00:00Z","earnings":325,"payments":2}`), nil)

		service := services.NewEarningsService(mockLoanStore, mockPaymentStore, mockRedisStore)

		report, err := service.EarningsForWindow(context.Background(), from, to)

		assert.NoError(t, err)
		assert.Equal(t, 325.0, report.Earnings)
		assert.Equal(t, 2, report.Payments)

		mockPaymentStore.AssertNotCalled(t, "PaymentsInWindow", mock.Anything, mock.Anything, mock.Anything)
		mockRedisStore.AssertExpectations(t)
	})
}

func TestDashboardAggregatesPortfolio(t *testing.T) {

	mockLoanStore := new(MockLoanStore)
	mockRedisStore := new(MockRedisStore)

	mockRedisStore.On("Get", mock.Anything, "dashboard:summary").Return(nil, redis.Nil)
	mockRedisStore.On("Set", mock.Anything, "dashboard:summary", mock.Anything, mock.AnythingOfType("time.Duration")).Return(nil)

	mockLoanStore.On("AllLoans", mock.Anything).Return([]models.Loan{
		{
			Principal:      1000,
			InterestAmount: 100,
			TotalPayable:   1100,
			TotalPaid:      1100,
			IsFullyPaid:    true,
		},
		{
			Principal:      2000,
			InterestAmount: 200,
			TotalPayable:   2200,
			TotalPaid:      500,
			PenaltyAmount:  50,
		},
	}, nil)

	service := services.NewEarningsService(mockLoanStore, new(MockPaymentStore), mockRedisStore)

	summary, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalLoans)
	assert.Equal(t, 1, summary.ActiveLoans)
	assert.Equal(t, 3350.0, summary.TotalAmountDue)
	assert.Equal(t, 1600.0, summary.TotalAmountPaid)
	assert.Equal(t, 1750.0, summary.RemainingAmount)
	assert.Equal(t, 300.0, summary.TotalInterestAmount)
	assert.Equal(t, 50.0, summary.TotalPenaltyAmount)

	mockLoanStore.AssertExpectations(t)
	mockRedisStore.AssertExpectations(t)
}
