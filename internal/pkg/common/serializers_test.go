package common

import (
	"encoding/json"
	"testing"
	"time"

	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializePayment(t *testing.T) {
	loan := models.Loan{
		ID:           primitive.NewObjectID(),
		SerialNumber: "A-100",
		AreaID:       primitive.NewObjectID(),
		ScheduleKind: consts.ScheduleDaily,
	}
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("carries the loan identity", func(t *testing.T) {
		payment := SerializePayment(loan, 100, date, consts.ScheduleWeekly, "Bautista", "batch-1")
		assert.Equal(t, loan.ID, payment.LoanID)
		assert.Equal(t, "A-100", payment.SerialNumber)
		assert.Equal(t, loan.AreaID, payment.AreaID)
		assert.Equal(t, consts.ScheduleWeekly, payment.ScheduleKind)
		assert.Equal(t, "batch-1", payment.BatchID)
		assert.False(t, payment.PublishedToKafka)
	})

	t.Run("defaults the schedule to the loan's", func(t *testing.T) {
		payment := SerializePayment(loan, 100, date, "", "", "")
		assert.Equal(t, consts.ScheduleDaily, payment.ScheduleKind)
	})
}

func TestSerializeBatchPayments(t *testing.T) {
	staged := []models.StagedPayment{
		{LoanID: primitive.NewObjectID(), SerialNumber: "1", Amount: 100},
		{LoanID: primitive.NewObjectID(), SerialNumber: "2", Amount: 150},
	}

	payments := SerializeBatchPayments(staged, "batch-7")
	assert.Len(t, payments, 2)
	for i, payment := range payments {
		assert.Equal(t, staged[i].LoanID, payment.LoanID)
		assert.Equal(t, "batch-7", payment.BatchID)
		assert.False(t, payment.ID.IsZero())
	}
}

func TestSerializeLedgerEventKafkaMessage(t *testing.T) {
	loan := models.Loan{
		ID:            primitive.NewObjectID(),
		SerialNumber:  "A-100",
		TotalPaid:     700,
		PenaltyAmount: 100,
	}
	event := SerializeLedgerEvent(consts.PaymentCommitted, loan, 100)

	payload := SerializeLedgerEventKafkaMessage(event)
	assert.NotEmpty(t, payload)

	var decoded models.LedgerEvent
	assert.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, consts.PaymentCommitted, decoded.EventType)
	assert.Equal(t, "A-100", decoded.SerialNumber)
	assert.Equal(t, 100.0, decoded.Amount)
	assert.NotEmpty(t, decoded.EventID)
}

func TestPrepareLedgerEventMessages(t *testing.T) {
	loanID := primitive.NewObjectID()
	loans := map[primitive.ObjectID]models.Loan{
		loanID: {ID: loanID, SerialNumber: "A-100"},
	}
	payments := []models.Payment{
		{ID: primitive.NewObjectID(), LoanID: loanID, Amount: 100},
		{ID: primitive.NewObjectID(), LoanID: primitive.NewObjectID(), Amount: 200}, // orphan
	}

	messages := PrepareLedgerEventMessages(payments, loans)
	assert.Len(t, messages, 1)
	assert.Equal(t, payments[0].ID.Hex(), messages[0].Key)
	assert.Contains(t, messages[0].Payload, "A-100")
}
