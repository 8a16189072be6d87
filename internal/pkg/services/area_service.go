package services

import (
	"context"
	"time"

	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/ledger"
	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AreaService struct {
	areaStore     AreaStoreInterface
	areaCostStore AreaCostStoreInterface
	loanStore     LoanStoreInterface
	paymentStore  PaymentStoreInterface
}

func NewAreaService(areaStore AreaStoreInterface, areaCostStore AreaCostStoreInterface, loanStore LoanStoreInterface, paymentStore PaymentStoreInterface) *AreaService {
	return &AreaService{
		areaStore:     areaStore,
		areaCostStore: areaCostStore,
		loanStore:     loanStore,
		paymentStore:  paymentStore,
	}
}

func (h *AreaService) CreateArea(ctx context.Context, request models.AreaRequest) (*models.Area, error) {

	now := time.Now()
	area := models.Area{
		ID:          primitive.NewObjectID(),
		Name:        request.Name,
		Description: request.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := h.areaStore.InsertArea(ctx, area); err != nil {
		return nil, err
	}

	return &area, nil
}

func (h *AreaService) UpdateArea(ctx context.Context, id string, request models.AreaRequest) (*models.Area, error) {

	areaID, err := parseAreaID(id)
	if err != nil {
		return nil, err
	}

	area, err := h.areaStore.AreaByID(ctx, areaID)
	if err != nil {
		return nil, err
	}

	area.Name = request.Name
	area.Description = request.Description
	area.UpdatedAt = time.Now()

	if err := h.areaStore.UpdateArea(ctx, *area); err != nil {
		return nil, err
	}

	return area, nil
}

func (h *AreaService) DeleteArea(ctx context.Context, id string) error {

	areaID, err := parseAreaID(id)
	if err != nil {
		return err
	}

	if _, err := h.areaStore.AreaByID(ctx, areaID); err != nil {
		return err
	}

	return h.areaStore.DeleteArea(ctx, areaID)
}

func (h *AreaService) AllAreas(ctx context.Context) ([]models.Area, error) {
	return h.areaStore.AllAreas(ctx)
}

// AreaStats aggregates the loan book for one area.
func (h *AreaService) AreaStats(ctx context.Context, id string) (*models.AreaStats, error) {

	areaID, err := parseAreaID(id)
	if err != nil {
		return nil, err
	}

	if _, err := h.areaStore.AreaByID(ctx, areaID); err != nil {
		return nil, err
	}

	loans, err := h.loanStore.LoansByArea(ctx, areaID)
	if err != nil {
		return nil, err
	}

	stats := models.AreaStats{AreaID: areaID, TotalLoans: len(loans)}
	for _, loan := range loans {
		owed := loan.TotalPayable + loan.PenaltyAmount
		stats.TotalAmountPayable += owed
		stats.TotalAmountPaid += loan.TotalPaid
		stats.TotalInterestAmount += loan.InterestAmount
		stats.TotalPenaltyAmount += loan.PenaltyAmount
		if !loan.IsFullyPaid {
			stats.ActiveLoans++
			stats.RemainingAmount += owed - loan.TotalPaid
		}
	}

	return &stats, nil
}

// AreaCostSummary sets the month's running costs against the interest earned
// from that month's collections in the area.
func (h *AreaService) AreaCostSummary(ctx context.Context, id string, month string) (*models.AreaCostSummary, error) {

	areaID, err := parseAreaID(id)
	if err != nil {
		return nil, err
	}

	if _, err := h.areaStore.AreaByID(ctx, areaID); err != nil {
		return nil, err
	}

	monthStart, err := utils.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	summary := models.AreaCostSummary{AreaID: areaID, Month: month}

	cost, err := h.areaCostStore.CostByAreaMonth(ctx, areaID, month)
	if err != nil {
		return nil, err
	}
	if cost != nil {
		for _, agent := range cost.Agents {
			summary.TotalAgentSalaries += agent.Salary
		}
		for _, expense := range cost.Expenses {
			if expense.Type == "agent" {
				summary.TotalAgentExpenses += expense.Amount
			} else {
				summary.TotalOtherExpenses += expense.Amount
			}
		}
	}
	summary.TotalCost = summary.TotalAgentSalaries + summary.TotalAgentExpenses + summary.TotalOtherExpenses

	earnings, err := h.monthEarnings(ctx, areaID, monthStart)
	if err != nil {
		return nil, err
	}
	summary.InterestEarnings = earnings
	summary.NetResult = summary.InterestEarnings - summary.TotalCost

	return &summary, nil
}

func (h *AreaService) UpdateAreaCost(ctx context.Context, id string, month string, request models.AreaCostUpdateRequest) (*models.AreaCost, error) {

	areaID, err := parseAreaID(id)
	if err != nil {
		return nil, err
	}

	if _, err := h.areaStore.AreaByID(ctx, areaID); err != nil {
		return nil, err
	}

	monthStart, err := utils.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	for i := range request.Agents {
		if request.Agents[i].ID.IsZero() {
			request.Agents[i].ID = primitive.NewObjectID()
		}
	}
	for i := range request.Expenses {
		if request.Expenses[i].ID.IsZero() {
			request.Expenses[i].ID = primitive.NewObjectID()
		}
	}

	earnings, err := h.monthEarnings(ctx, areaID, monthStart)
	if err != nil {
		return nil, err
	}

	cost := models.AreaCost{
		AreaID:           areaID,
		Month:            month,
		Agents:           request.Agents,
		Expenses:         request.Expenses,
		InterestEarnings: earnings,
		UpdatedAt:        time.Now(),
	}

	if err := h.areaCostStore.UpsertCost(ctx, cost); err != nil {
		return nil, err
	}

	stored, err := h.areaCostStore.CostByAreaMonth(ctx, areaID, month)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}
	return &cost, nil
}

// monthEarnings recognizes per-payment earnings for the area over one
// calendar month, summing each payment's share of its loan's interest.
func (h *AreaService) monthEarnings(ctx context.Context, areaID primitive.ObjectID, monthStart time.Time) (float64, error) {

	from, to := common.MonthBounds(monthStart)

	windowPayments, err := h.paymentStore.PaymentsInWindow(ctx, from, to)
	if err != nil {
		return 0, err
	}

	areaPayments := make([]models.Payment, 0, len(windowPayments))
	loanByID := make(map[primitive.ObjectID]models.Loan)
	for _, payment := range windowPayments {
		if payment.AreaID != areaID {
			continue
		}
		areaPayments = append(areaPayments, payment)
		if _, seen := loanByID[payment.LoanID]; seen {
			continue
		}
		loan, err := h.loanStore.LoanByID(ctx, payment.LoanID)
		if err != nil {
			continue
		}
		loanByID[payment.LoanID] = *loan
	}

	return ledger.PaymentWindowEarnings(areaPayments, loanByID), nil
}

func parseAreaID(id string) (primitive.ObjectID, error) {
	if !utils.IsValidObjectIDHex(id) {
		return primitive.NilObjectID, consts.ErrorAreaNotFound
	}
	return primitive.ObjectIDFromHex(id)
}
