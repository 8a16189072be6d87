package producer

import (
	"context"
	"fmt"
	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStoreInterface interface {
	UnpublishedPayments(ctx context.Context, limit int32) ([]models.Payment, error)
	MarkPublishedToKafka(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error)
}

type LoanStoreInterface interface {
	LoanByID(ctx context.Context, id primitive.ObjectID) (*models.Loan, error)
}

// KafkaRetryService re-publishes ledger events for payments whose first
// publish failed, then flips their publishedToKafka flag.
type KafkaRetryService struct {
	paymentStore PaymentStoreInterface
	loanStore    LoanStoreInterface
}

func NewKafkaRetryService(paymentStore PaymentStoreInterface, loanStore LoanStoreInterface) *KafkaRetryService {
	return &KafkaRetryService{paymentStore: paymentStore, loanStore: loanStore}
}

func (ks *KafkaRetryService) RetryLedgerEventMessages(ctx context.Context) ([]string, []string, error) {
	topic := configs.KAFKA_TOPIC
	server := configs.KAFKA_SERVER
	if KafkaProducer == nil {
		producer, err := NewKafkaProducer(server, topic)
		if err != nil {
			logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
			return nil, nil, err
		}
		logger.Info(ctx, "Kafka Producer Created")
		KafkaProducer = producer
	}

	payments, err := ks.paymentStore.UnpublishedPayments(ctx, int32(configs.KAFKA_RETRY_DURATION))
	if err != nil {
		return nil, nil, err
	}
	if len(payments) <= 0 {
		return nil, nil, fmt.Errorf("no unpublished payments found in the duration")
	}

	loanByID := make(map[primitive.ObjectID]models.Loan)
	for _, payment := range payments {
		if _, seen := loanByID[payment.LoanID]; seen {
			continue
		}
		loan, err := ks.loanStore.LoanByID(ctx, payment.LoanID)
		if err != nil {
			logger.Warn(ctx, "Skipping payment %s: owning loan unresolvable: %v", payment.ID.Hex(), err)
			continue
		}
		loanByID[payment.LoanID] = *loan
	}

	messages := common.PrepareLedgerEventMessages(payments, loanByID)
	if len(messages) <= 0 {
		return nil, nil, fmt.Errorf("no publishable ledger events in the duration")
	}

	successMessagesId, failedMessagesId, err := SendMessageBatch(ctx, KafkaProducer, messages, topic, 2)
	if err != nil {
		return nil, nil, err
	}

	publishedIDs := make([]primitive.ObjectID, 0, len(successMessagesId))
	for _, hex := range successMessagesId {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue
		}
		publishedIDs = append(publishedIDs, id)
	}

	if _, err := ks.paymentStore.MarkPublishedToKafka(ctx, publishedIDs); err != nil {
		return successMessagesId, failedMessagesId, fmt.Errorf("error updating Kafka flag in database for payments %v with error %v", successMessagesId, err)
	}

	return successMessagesId, failedMessagesId, nil
}
