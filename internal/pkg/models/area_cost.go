package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CostAgent struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Salary float64            `bson:"salary" json:"salary"`
}

type CostExpense struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	Type        string             `bson:"type" json:"type"` // "agent" or "other"
}

// AreaCost tracks a single month's running cost for one area alongside the
// interest earned from that month's collections.
type AreaCost struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	AreaID           primitive.ObjectID `bson:"areaId" json:"areaId"`
	Month            string             `bson:"month" json:"month"` // "2006-01"
	Agents           []CostAgent        `bson:"agents" json:"agents"`
	Expenses         []CostExpense      `bson:"expenses" json:"expenses"`
	InterestEarnings float64            `bson:"interestEarnings" json:"interestEarnings"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AreaCostSummary is the report view: costs against earnings for the month.
type AreaCostSummary struct {
	AreaID             primitive.ObjectID `json:"areaId"`
	Month              string             `json:"month"`
	TotalAgentSalaries float64            `json:"totalAgentSalaries"`
	TotalAgentExpenses float64            `json:"totalAgentExpenses"`
	TotalOtherExpenses float64            `json:"totalOtherExpenses"`
	TotalCost          float64            `json:"totalCost"`
	InterestEarnings   float64            `json:"interestEarnings"`
	NetResult          float64            `json:"netResult"`
}
