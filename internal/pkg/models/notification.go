package models

import "time"

// ReceiptNotification is the Pub/Sub payload the receipt service renders
// into an SMS for the customer after a payment is committed.
type ReceiptNotification struct {
	SerialNumber    string    `json:"serialNumber"`
	CustomerName    string    `json:"customerName"`
	Amount          float64   `json:"amount"`
	PaymentDate     time.Time `json:"paymentDate"`
	TotalPaid       float64   `json:"totalPaid"`
	RemainingAmount float64   `json:"remainingAmount"`
	IsFullyPaid     bool      `json:"isFullyPaid"`
	AgentName       string    `json:"agentName,omitempty"`
}
