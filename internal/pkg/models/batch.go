package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentEntry is one row of a collection run, as keyed in by the posting UI
// or an import.
type PaymentEntry struct {
	SerialNumber string  `json:"serialNumber"`
	Amount       float64 `json:"amount"`
	AgentName    string  `json:"agentName,omitempty"`
}

// StagedPayment is a validated batch entry resolved to a loan. Entries for the
// same loan within one batch are merged by summing amounts before staging.
type StagedPayment struct {
	LoanID       primitive.ObjectID `json:"loanId"`
	SerialNumber string             `json:"serialNumber"`
	CustomerName string             `json:"customerName"`
	AreaID       primitive.ObjectID `json:"areaId,omitempty"`
	Amount       float64            `json:"amount"`
	Date         time.Time          `json:"date"`
	ScheduleKind string             `json:"scheduleKind"`
	AgentName    string             `json:"agentName,omitempty"`
}

// FailedPayment carries the per-entry reason so the caller can retry just the
// failed subset.
type FailedPayment struct {
	SerialNumber string `json:"serialNumber"`
	Reason       string `json:"reason"`
}

type BatchResult struct {
	BatchID            string          `json:"batchId"`
	SuccessfulPayments []StagedPayment `json:"successfulPayments"`
	FailedPayments     []FailedPayment `json:"failedPayments"`
}

// BatchInProgress guards a collection date against concurrent double posting.
// Rows expire via a TTL index on createdAt.
type BatchInProgress struct {
	ID        primitive.ObjectID `bson:"_id"`
	BatchKey  string             `bson:"batchKey"`
	CreatedAt time.Time          `bson:"createdAt"`
}
