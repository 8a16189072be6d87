package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is immutable once created; deleting one triggers a full reconcile of
// the owning loan.
type Payment struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	LoanID           primitive.ObjectID `bson:"loanId" json:"loanId"`
	SerialNumber     string             `bson:"serialNumber" json:"serialNumber"`
	AreaID           primitive.ObjectID `bson:"areaId,omitempty" json:"areaId,omitempty"`
	Amount           float64            `bson:"amount" json:"amount"`
	Date             time.Time          `bson:"date" json:"date"`
	ScheduleKind     string             `bson:"scheduleKind" json:"scheduleKind"`
	AgentName        string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	BatchID          string             `bson:"batchId,omitempty" json:"batchId,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	PublishedToKafka bool               `bson:"publishedToKafka" json:"publishedToKafka"`
}
