package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPubSubPublisher struct {
	mock.Mock
}

func (m *MockPubSubPublisher) Publish(ctx context.Context, topic string, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, topic, data, attributes)
	return args.String(0), args.Error(1)
}

func (m *MockPubSubPublisher) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPubSubPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func receiptFixture() (models.Loan, models.Payment) {
	loan := models.Loan{
		SerialNumber:  "A-100",
		CustomerName:  "Dela Cruz",
		TotalPayable:  1100,
		PenaltyAmount: 100,
		TotalPaid:     700,
	}
	payment := models.Payment{
		Amount:    100,
		Date:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		AgentName: "Bautista",
	}
	return loan, payment
}

func TestNotifyReceipt(t *testing.T) {
	enabled := configs.PubSubConfig{ProjectID: "test-project", Topic: "receipt-topic", Enabled: true}

	t.Run("publishes the receipt with payment attributes", func(t *testing.T) {
		publisher := new(MockPubSubPublisher)
		service := NewNotificationServiceWithConfig(publisher, enabled)
		loan, payment := receiptFixture()

		publisher.On("Publish", mock.Anything, "receipt-topic", mock.Anything, mock.Anything).Return("msg-1", nil)

		err := service.NotifyReceipt(context.Background(), loan, payment)
		assert.NoError(t, err)

		data := publisher.Calls[0].Arguments.Get(2).([]byte)
		var receipt models.ReceiptNotification
		assert.NoError(t, json.Unmarshal(data, &receipt))
		assert.Equal(t, "A-100", receipt.SerialNumber)
		assert.Equal(t, 100.0, receipt.Amount)
		assert.Equal(t, 500.0, receipt.RemainingAmount)

		attributes := publisher.Calls[0].Arguments.Get(3).(map[string]string)
		assert.Equal(t, "A-100", attributes["serialNumber"])
		publisher.AssertExpectations(t)
	})

	t.Run("skips silently when disabled", func(t *testing.T) {
		publisher := new(MockPubSubPublisher)
		disabled := configs.PubSubConfig{Topic: "receipt-topic", Enabled: false}
		service := NewNotificationServiceWithConfig(publisher, disabled)
		loan, payment := receiptFixture()

		err := service.NotifyReceipt(context.Background(), loan, payment)
		assert.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surfaces publish failures", func(t *testing.T) {
		publisher := new(MockPubSubPublisher)
		service := NewNotificationServiceWithConfig(publisher, enabled)
		loan, payment := receiptFixture()

		publisher.On("Publish", mock.Anything, "receipt-topic", mock.Anything, mock.Anything).Return("", errors.New("pubsub unavailable"))

		err := service.NotifyReceipt(context.Background(), loan, payment)
		assert.Error(t, err)
	})
}
