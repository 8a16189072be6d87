package producer

import (
	"context"
	"fmt"
	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	kafkaservice "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaService struct {
}

func NewKafkaService() *KafkaService {
	return &KafkaService{}
}

func KafkaPublisher(ctx context.Context, key string, payload string) error {

	KafkaTopic := configs.KAFKA_TOPIC

	config := &kafkaservice.ConfigMap{
		"bootstrap.servers":  configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0,
	}
	producer, err := kafkaservice.NewProducer(config)
	if err != nil {
		return fmt.Errorf("failed to create producer: %w", err)
	}
	defer producer.Close()

	payloadBytes := []byte(payload)

	// Publish the message
	deliveryChan := make(chan kafkaservice.Event, 1)
	err = producer.Produce(&kafkaservice.Message{
		TopicPartition: kafkaservice.TopicPartition{Topic: &KafkaTopic, Partition: kafkaservice.PartitionAny},
		Key:            []byte(key),
		Value:          payloadBytes,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	// Wait for message delivery
	event := <-deliveryChan
	msg := event.(*kafkaservice.Message)
	if msg.TopicPartition.Error != nil {
		return fmt.Errorf("delivery failed: %w", msg.TopicPartition.Error)
	}

	logger.Info(ctx, "Message delivered to topic: %s, partition: %d, offset: %v, Message content: %s",
		*msg.TopicPartition.Topic, msg.TopicPartition.Partition, msg.TopicPartition.Offset, string(payloadBytes))

	return nil
}

// PublishLedgerEventToKafka emits one ledger mutation to the ledger topic,
// keyed by payment id so partition ordering follows the payment.
func (k *KafkaService) PublishLedgerEventToKafka(ctx context.Context, paymentID string, event models.LedgerEvent) error {

	payload := common.SerializeLedgerEventKafkaMessage(event)
	if payload == "" {
		return fmt.Errorf("failed to serialize ledger event %s", event.EventID)
	}

	return KafkaPublisher(ctx, paymentID, payload)
}
