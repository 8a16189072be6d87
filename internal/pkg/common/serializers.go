package common

import (
	"encoding/json"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/models"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func SerializeLoan(serialNumber string, customerName string, areaID primitive.ObjectID, principal float64, interestAmount float64, issuedDate time.Time, scheduleKind string, numberOfDays int, numberOfWeeks int, numberOfMonths int) models.Loan {

	now := time.Now()

	return models.Loan{
		ID:             primitive.NewObjectID(),
		SerialNumber:   serialNumber,
		CustomerName:   customerName,
		AreaID:         areaID,
		Principal:      principal,
		InterestAmount: interestAmount,
		IssuedDate:     issuedDate,
		ScheduleKind:   scheduleKind,
		NumberOfDays:   numberOfDays,
		NumberOfWeeks:  numberOfWeeks,
		NumberOfMonths: numberOfMonths,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

}

func SerializePayment(loan models.Loan, amount float64, date time.Time, scheduleKind string, agentName string, batchID string) models.Payment {

	if scheduleKind == "" {
		scheduleKind = loan.ScheduleKind
	}

	return models.Payment{
		ID:               primitive.NewObjectID(),
		LoanID:           loan.ID,
		SerialNumber:     loan.SerialNumber,
		AreaID:           loan.AreaID,
		Amount:           amount,
		Date:             date,
		ScheduleKind:     scheduleKind,
		AgentName:        agentName,
		BatchID:          batchID,
		CreatedAt:        time.Now(),
		PublishedToKafka: false,
	}

}

func SerializeBatchPayments(staged []models.StagedPayment, batchID string) []models.Payment {

	payments := make([]models.Payment, 0, len(staged))
	for _, candidate := range staged {
		payments = append(payments, models.Payment{
			ID:               primitive.NewObjectID(),
			LoanID:           candidate.LoanID,
			SerialNumber:     candidate.SerialNumber,
			AreaID:           candidate.AreaID,
			Amount:           candidate.Amount,
			Date:             candidate.Date,
			ScheduleKind:     candidate.ScheduleKind,
			AgentName:        candidate.AgentName,
			BatchID:          batchID,
			CreatedAt:        time.Now(),
			PublishedToKafka: false,
		})
	}

	return payments
}

func SerializeBatchInProgress(batchKey string) models.BatchInProgress {

	return models.BatchInProgress{
		ID:        primitive.NewObjectID(),
		BatchKey:  batchKey,
		CreatedAt: time.Now(),
	}

}

func SerializeLedgerEvent(eventType string, loan models.Loan, amount float64) models.LedgerEvent {

	return models.LedgerEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		SerialNumber:  loan.SerialNumber,
		LoanID:        loan.ID.Hex(),
		Amount:        amount,
		TotalPaid:     loan.TotalPaid,
		PenaltyAmount: loan.PenaltyAmount,
		IsFullyPaid:   loan.IsFullyPaid,
		OccurredAt:    time.Now(),
	}

}

// SerializeLedgerEventKafkaMessage renders the wire payload for the ledger
// topic. Failures degrade to an empty string, never a panic, since publishing
// is best-effort on the hot path.
func SerializeLedgerEventKafkaMessage(event models.LedgerEvent) string {
	payload, err := json.Marshal(event)
	if err != nil {
		return ""
	}
	return string(payload)
}

// PrepareLedgerEventMessages rebuilds ledger events for payments whose first
// publish never landed, keyed by payment id so the retry can flag exactly the
// ones that went through.
func PrepareLedgerEventMessages(payments []models.Payment, loanByID map[primitive.ObjectID]models.Loan) []models.OutboundMessage {

	messages := make([]models.OutboundMessage, 0, len(payments))
	for _, payment := range payments {
		loan, ok := loanByID[payment.LoanID]
		if !ok {
			continue
		}
		event := SerializeLedgerEvent(consts.PaymentCommitted, loan, payment.Amount)
		event.OccurredAt = payment.CreatedAt
		messages = append(messages, models.OutboundMessage{
			Key:     payment.ID.Hex(),
			Payload: SerializeLedgerEventKafkaMessage(event),
		})
	}

	return messages
}
