package models

// Request bodies for the ledger HTTP surface. Dates travel as "2006-01-02"
// strings and are parsed at the handler boundary.

type CreateLoanRequest struct {
	SerialNumber   string  `json:"serialNumber" binding:"required"`
	CustomerName   string  `json:"customerName" binding:"required"`
	AreaID         string  `json:"areaId,omitempty"`
	Principal      float64 `json:"principal" binding:"required"`
	InterestAmount float64 `json:"interestAmount"`
	IssuedDate     string  `json:"issuedDate" binding:"required"`
	ScheduleKind   string  `json:"scheduleKind" binding:"required"`
	NumberOfDays   int     `json:"numberOfDays,omitempty"`
	NumberOfWeeks  int     `json:"numberOfWeeks,omitempty"`
	NumberOfMonths int     `json:"numberOfMonths,omitempty"`
}

type UpdateLoanRequest struct {
	CustomerName   string  `json:"customerName,omitempty"`
	AreaID         string  `json:"areaId,omitempty"`
	Principal      float64 `json:"principal,omitempty"`
	InterestAmount float64 `json:"interestAmount,omitempty"`
	IssuedDate     string  `json:"issuedDate,omitempty"`
	ScheduleKind   string  `json:"scheduleKind,omitempty"`
	NumberOfDays   int     `json:"numberOfDays,omitempty"`
	NumberOfWeeks  int     `json:"numberOfWeeks,omitempty"`
	NumberOfMonths int     `json:"numberOfMonths,omitempty"`
}

type AddPaymentRequest struct {
	SerialNumber string  `json:"serialNumber" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	ScheduleKind string  `json:"scheduleKind,omitempty"`
	AgentName    string  `json:"agentName,omitempty"`
}

type BatchPostingRequest struct {
	Date         string         `json:"date" binding:"required"`
	ScheduleKind string         `json:"scheduleKind" binding:"required"`
	AreaID       string         `json:"areaId,omitempty"`
	Entries      []PaymentEntry `json:"entries" binding:"required"`
}

type PenaltyAccrualRequest struct {
	// Accrual date override, for backfills. Defaults to today.
	Now string `json:"now,omitempty"`
}

type AreaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type AreaCostUpdateRequest struct {
	Agents   []CostAgent   `json:"agents"`
	Expenses []CostExpense `json:"expenses"`
}
