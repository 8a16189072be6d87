package notification

import (
	"context"
	"encoding/json"
	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"
	"globe/machop_loan_ledger/internal/pkg/pubsub"
	"math"
)

// NotificationService publishes payment receipts to the receipt topic. It is
// presentation-side plumbing: ledger operations return their results and the
// caller decides whether a receipt goes out, so a Pub/Sub outage never blocks
// a payment.
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
	config          configs.PubSubConfig
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
		config:          configs.GetPubSubConfig(),
	}
}

func NewNotificationServiceWithConfig(pubsubPublisher pubsub.PubSubPublisherInterface, config configs.PubSubConfig) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
		config:          config,
	}
}

// NotifyReceipt sends a payment receipt for the committed payment.
func (h *NotificationService) NotifyReceipt(ctx context.Context, loan models.Loan, payment models.Payment) error {
	if !h.config.Enabled || h.pubsubPublisher == nil {
		logger.Debug(ctx, "Receipt notifications disabled, skipping receipt for %s", loan.SerialNumber)
		return nil
	}

	owed := loan.TotalPayable + loan.PenaltyAmount
	receipt := models.ReceiptNotification{
		SerialNumber:    loan.SerialNumber,
		CustomerName:    loan.CustomerName,
		Amount:          payment.Amount,
		PaymentDate:     payment.Date,
		TotalPaid:       loan.TotalPaid,
		RemainingAmount: math.Max(0, owed-loan.TotalPaid),
		IsFullyPaid:     loan.IsFullyPaid,
		AgentName:       payment.AgentName,
	}

	data, err := json.Marshal(receipt)
	if err != nil {
		logger.Error(ctx, "Failed to marshal receipt for %s: %v", loan.SerialNumber, err)
		return err
	}

	attributes := map[string]string{
		"eventType":    consts.PaymentCommitted,
		"serialNumber": loan.SerialNumber,
	}

	messageID, err := h.pubsubPublisher.Publish(ctx, h.config.Topic, data, attributes)
	if err != nil {
		logger.Error(ctx, "Failed to publish receipt for %s: %v", loan.SerialNumber, err)
		return err
	}

	logger.Info(ctx, "%s serial: %s messageId: %s", consts.ReceiptNotificationSent, loan.SerialNumber, messageID)
	return nil
}
