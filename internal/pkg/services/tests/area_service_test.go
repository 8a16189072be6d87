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

func TestAreaStats(t *testing.T) {

	areaID := primitive.NewObjectID()

	mockAreaStore := new(MockAreaStore)
	mockLoanStore := new(MockLoanStore)

	mockAreaStore.On("AreaByID", mock.Anything, areaID).Return(&models.Area{ID: areaID, Name: "District 4"}, nil)
	mockLoanStore.On("LoansByArea", mock.Anything, areaID).Return([]models.Loan{
		{
			AreaID:         areaID,
			Principal:      1000,
			InterestAmount: 100,
			TotalPayable:   1100,
			TotalPaid:      400,
		},
		{
			AreaID:         areaID,
			Principal:      500,
			InterestAmount: 50,
			TotalPayable:   550,
			TotalPaid:      550,
			IsFullyPaid:    true,
		},
	}, nil)

	service := services.NewAreaService(mockAreaStore, new(MockAreaCostStore), mockLoanStore, new(MockPaymentStore))

	stats, err := service.AreaStats(context.Background(), areaID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalLoans)
	assert.Equal(t, 1, stats.ActiveLoans)
	assert.Equal(t, 1650.0, stats.TotalAmountPayable)
	assert.Equal(t, 950.0, stats.TotalAmountPaid)
	assert.Equal(t, 700.0, stats.RemainingAmount)

	mockAreaStore.AssertExpectations(t)
	mockLoanStore.AssertExpectations(t)
}

func TestAreaStatsUnknownArea(t *testing.T) {

	areaID := primitive.NewObjectID()

	mockAreaStore := new(MockAreaStore)
	mockAreaStore.On("AreaByID", mock.Anything, areaID).Return(nil, consts.ErrorAreaNotFound)

	service := services.NewAreaService(mockAreaStore, new(MockAreaCostStore), new(MockLoanStore), new(MockPaymentStore))

	_, err := service.AreaStats(context.Background(), areaID.Hex())

	assert.Equal(t, consts.ErrorAreaNotFound, err)
}

func TestAreaCostSummary(t *testing.T) {

	areaID := primitive.NewObjectID()
	loanID := primitive.NewObjectID()

	mockAreaStore := new(MockAreaStore)
	mockAreaCostStore := new(MockAreaCostStore)
	mockLoanStore := new(MockLoanStore)
	mockPaymentStore := new(MockPaymentStore)

	mockAreaStore.On("AreaByID", mock.Anything, areaID).Return(&models.Area{ID: areaID}, nil)
	mockAreaCostStore.On("CostByAreaMonth", mock.Anything, areaID, "2024-01").Return(&models.AreaCost{
		AreaID: areaID,
		Month:  "2024-01",
		Agents: []models.CostAgent{
			{Name: "agent-1", Salary: 300},
		},
		Expenses: []models.CostExpense{
			{Description: "fuel", Amount: 50, Type: "agent"},
			{Description: "office rent", Amount: 100, Type: "other"},
		},
	}, nil)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mockPaymentStore.On("PaymentsInWindow", mock.Anything, from, to).Return([]models.Payment{
		{LoanID: loanID, AreaID: areaID, Amount: 500},
		{LoanID: loanID, Amount: 999}, // different area, excluded
	}, nil)
	mockLoanStore.On("LoanByID", mock.Anything, loanID).Return(&models.Loan{
		ID:             loanID,
		AreaID:         areaID,
		Principal:      1000,
		InterestAmount: 100,
	}, nil)

	service := services.NewAreaService(mockAreaStore, mockAreaCostStore, mockLoanStore, mockPaymentStore)

	summary, err := service.AreaCostSummary(context.Background(), areaID.Hex(), "2024-01")

	assert.NoError(t, err)
	assert.Equal(t, 300.0, summary.TotalAgentSalaries)
	assert.Equal(t, 50.0, summary.TotalAgentExpenses)
	assert.Equal(t, 100.0, summary.TotalOtherExpenses)
	assert.Equal(t, 450.0, summary.TotalCost)
	// 500 paid on a 1000 principal earns half the 100 interest.
	assert.Equal(t, 50.0, summary.InterestEarnings)
	assert.Equal(t, -400.0, summary.NetResult)

	mockAreaCostStore.AssertExpectations(t)
}

func TestCreateAndDeleteArea(t *testing.T) {

	areaID := primitive.NewObjectID()

	mockAreaStore := new(MockAreaStore)
	mockAreaStore.On("InsertArea", mock.Anything, mock.AnythingOfType("models.Area")).Return(true, nil)
	mockAreaStore.On("AreaByID", mock.Anything, areaID).Return(&models.Area{ID: areaID}, nil)
	mockAreaStore.On("DeleteArea", mock.Anything, areaID).Return(nil)

	service := services.NewAreaService(mockAreaStore, new(MockAreaCostStore), new(MockLoanStore), new(MockPaymentStore))

	area, err := service.CreateArea(context.Background(), models.AreaRequest{Name: "District 4"})
	assert.NoError(t, err)
	assert.Equal(t, "District 4", area.Name)
	assert.False(t, area.ID.IsZero())

	err = service.DeleteArea(context.Background(), areaID.Hex())
	assert.NoError(t, err)

	mockAreaStore.AssertExpectations(t)
}
