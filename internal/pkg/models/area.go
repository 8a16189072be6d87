package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Area is a grouping entity for loans and payments. It has no computational
// role in the ledger.
type Area struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AreaStats is the aggregate view of an area's loan book.
type AreaStats struct {
	AreaID              primitive.ObjectID `json:"areaId"`
	TotalLoans          int                `json:"totalLoans"`
	ActiveLoans         int                `json:"activeLoans"`
	TotalAmountPayable  float64            `json:"totalAmountPayable"`
	TotalAmountPaid     float64            `json:"totalAmountPaid"`
	RemainingAmount     float64            `json:"remainingAmount"`
	TotalInterestAmount float64            `json:"totalInterestAmount"`
	TotalPenaltyAmount  float64            `json:"totalPenaltyAmount"`
}
