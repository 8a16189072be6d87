package models

import "time"

// LedgerEvent is published to the ledger Kafka topic on every ledger mutation
// so downstream reporting stays in step without polling the store.
type LedgerEvent struct {
	EventID       string    `json:"eventId"`
	EventType     string    `json:"eventType"` // PAYMENT_COMMITTED, PAYMENT_DELETED, PENALTY_ACCRUED
	SerialNumber  string    `json:"serialNumber"`
	LoanID        string    `json:"loanId"`
	Amount        float64   `json:"amount"`
	TotalPaid     float64   `json:"totalPaid"`
	PenaltyAmount float64   `json:"penaltyAmount"`
	IsFullyPaid   bool      `json:"isFullyPaid"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// OutboundMessage is a keyed payload bound for the ledger Kafka topic.
type OutboundMessage struct {
	Key     string `json:"key"`
	Payload string `json:"payload"`
}

// SweepResult summarizes one penalty accrual run.
type SweepResult struct {
	LoansExamined int     `json:"loansExamined"`
	LoansAccrued  int     `json:"loansAccrued"`
	TotalAccrued  float64 `json:"totalAccrued"`
}

// DashboardSummary is the portfolio-wide totals view.
type DashboardSummary struct {
	TotalLoans          int     `json:"totalLoans"`
	ActiveLoans         int     `json:"activeLoans"`
	TotalAmountDue      float64 `json:"totalAmountDue"`
	TotalAmountPaid     float64 `json:"totalAmountPaid"`
	RemainingAmount     float64 `json:"remainingAmount"`
	TotalInterestAmount float64 `json:"totalInterestAmount"`
	TotalPenaltyAmount  float64 `json:"totalPenaltyAmount"`
}

// EarningsReport is a recognized-earnings figure over a payment window.
type EarningsReport struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Earnings float64   `json:"earnings"`
	Payments int       `json:"payments"`
}

// CollectionReportSummary describes an exported collection report.
type CollectionReportSummary struct {
	Date     time.Time `json:"date"`
	Rows     int       `json:"rows"`
	Total    float64   `json:"total"`
	FileName string    `json:"fileName"`
}
