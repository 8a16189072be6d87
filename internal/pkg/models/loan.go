package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loan is a single lending relationship: fixed principal and flat interest,
// repaid on a daily, weekly or monthly schedule. Derived fields are recomputed
// from the terms whenever the terms change; ledger state is recomputed from the
// full payment history.
type Loan struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	SerialNumber string             `bson:"serialNumber" json:"serialNumber"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	AreaID       primitive.ObjectID `bson:"areaId,omitempty" json:"areaId,omitempty"`

	Principal      float64   `bson:"principal" json:"principal"`
	InterestAmount float64   `bson:"interestAmount" json:"interestAmount"`
	IssuedDate     time.Time `bson:"issuedDate" json:"issuedDate"`
	ScheduleKind   string    `bson:"scheduleKind" json:"scheduleKind"`
	NumberOfDays   int       `bson:"numberOfDays,omitempty" json:"numberOfDays,omitempty"`
	NumberOfWeeks  int       `bson:"numberOfWeeks,omitempty" json:"numberOfWeeks,omitempty"`
	NumberOfMonths int       `bson:"numberOfMonths,omitempty" json:"numberOfMonths,omitempty"`

	// Derived from the terms above, recomputed on every edit.
	TotalPayable      float64   `bson:"totalPayable" json:"totalPayable"`
	InstallmentAmount float64   `bson:"installmentAmount" json:"installmentAmount"`
	DeadlineDate      time.Time `bson:"deadlineDate" json:"deadlineDate"`
	InterestPercent   float64   `bson:"interestPercent" json:"interestPercent"`

	// Ledger state, recomputed from the full payment list.
	TotalPaid             float64    `bson:"totalPaid" json:"totalPaid"`
	IsFullyPaid           bool       `bson:"isFullyPaid" json:"isFullyPaid"`
	PenaltyAmount         float64    `bson:"penaltyAmount" json:"penaltyAmount"`
	LastPenaltyCalculated *time.Time `bson:"lastPenaltyCalculated,omitempty" json:"lastPenaltyCalculated,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
