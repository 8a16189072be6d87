package producer

import (
	"context"
	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(broker, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

func (p *Producer) Close() {
	p.producer.Close()
}

// SendMessageBatch publishes keyed ledger events with per-message retry and
// linear backoff, returning which keys landed and which did not.
func SendMessageBatch(ctx context.Context, kafkaProducer *Producer, messages []models.OutboundMessage, topic string, retryCount int) ([]string, []string, error) {

	var successIDs []string
	var failedIDs []string

	kafkaMessages := make([]*kafka.Message, len(messages))
	for i, msg := range messages {
		kafkaMessages[i] = &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Value:          []byte(msg.Payload),
			Key:            []byte(msg.Key),
		}
	}

	for _, kafkaMsg := range kafkaMessages {
		success := false
		for attempt := 0; attempt <= retryCount; attempt++ {
			err := kafkaProducer.producer.Produce(kafkaMsg, nil)
			if err == nil {
				logger.Info(ctx, "kafka message sent successfully")
				success = true
				break
			}
			logger.Error(ctx, "Failed to send Kafka message on attempt %d: %v", attempt+1, err)
			// Backoff before retrying
			time.Sleep(time.Second * time.Duration(attempt+1))
		}
		if success {
			successIDs = append(successIDs, string(kafkaMsg.Key))
		} else {
			failedIDs = append(failedIDs, string(kafkaMsg.Key))
		}
	}

	// Wait for all messages to be delivered
	kafkaProducer.producer.Flush(15 * 1000)
	return successIDs, failedIDs, nil
}
