package tests

import (
	"context"
	"time"

	"globe/machop_loan_ledger/internal/pkg/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockLoanStore struct {
	mock.Mock
}

type MockPaymentStore struct {
	mock.Mock
}

type MockAreaStore struct {
	mock.Mock
}

type MockAreaCostStore struct {
	mock.Mock
}

type MockBatchGuardStore struct {
	mock.Mock
}

type MockKafkaService struct {
	mock.Mock
}

type MockReceiptNotifier struct {
	mock.Mock
}

type MockSFTPClient struct {
	mock.Mock
}

type MockRedisStore struct {
	mock.Mock
}

// Implement interface methods for mocks

func (m *MockLoanStore) InsertLoan(ctx context.Context, loan models.Loan) (bool, error) {
	args := m.Called(ctx, loan)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoanStore) LoanBySerialNumber(ctx context.Context, serialNumber string) (*models.Loan, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *MockLoanStore) LoanByID(ctx context.Context, id primitive.ObjectID) (*models.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *MockLoanStore) AllLoans(ctx context.Context) ([]models.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

func (m *MockLoanStore) LoansByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Loan, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

func (m *MockLoanStore) OverdueLoans(ctx context.Context, now time.Time) ([]models.Loan, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

func (m *MockLoanStore) UpdateLoan(ctx context.Context, loan models.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanStore) DeleteLoan(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentStore) InsertPayment(ctx context.Context, payment models.Payment) (bool, error) {
	args := m.Called(ctx, payment)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentStore) InsertPayments(ctx context.Context, payments []models.Payment) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, payments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockPaymentStore) PaymentByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentStore) PaymentsByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Payment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) PaymentsInWindow(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) PaymentsByDate(ctx context.Context, date time.Time, areaID *primitive.ObjectID) ([]models.Payment, error) {
	args := m.Called(ctx, date, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) DeletePayment(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentStore) DeletePaymentsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentStore) DeletePaymentsByLoanID(ctx context.Context, loanID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, loanID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentStore) MarkPublishedToKafka(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockAreaStore) InsertArea(ctx context.Context, area models.Area) (bool, error) {
	args := m.Called(ctx, area)
	return args.Bool(0), args.Error(1)
}

func (m *MockAreaStore) AreaByID(ctx context.Context, id primitive.ObjectID) (*models.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Area), args.Error(1)
}

func (m *MockAreaStore) AllAreas(ctx context.Context) ([]models.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Area), args.Error(1)
}

func (m *MockAreaStore) UpdateArea(ctx context.Context, area models.Area) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockAreaStore) DeleteArea(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAreaCostStore) CostByAreaMonth(ctx context.Context, areaID primitive.ObjectID, month string) (*models.AreaCost, error) {
	args := m.Called(ctx, areaID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AreaCost), args.Error(1)
}

func (m *MockAreaCostStore) UpsertCost(ctx context.Context, cost models.AreaCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockBatchGuardStore) IsBatchInProgress(ctx context.Context, batchKey string) (bool, error) {
	args := m.Called(ctx, batchKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockBatchGuardStore) CreateBatchInProgressEntry(ctx context.Context, entry models.BatchInProgress) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockBatchGuardStore) DeleteBatchInProgressByKey(ctx context.Context, batchKey string) (bool, error) {
	args := m.Called(ctx, batchKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockKafkaService) PublishLedgerEventToKafka(ctx context.Context, paymentID string, event models.LedgerEvent) error {
	args := m.Called(ctx, paymentID, event)
	return args.Error(0)
}

func (m *MockReceiptNotifier) NotifyReceipt(ctx context.Context, loan models.Loan, payment models.Payment) error {
	args := m.Called(ctx, loan, payment)
	return args.Error(0)
}

func (m *MockSFTPClient) UploadFileToSFTP(localFilePath, remoteFilePath string) error {
	args := m.Called(localFilePath, remoteFilePath)
	return args.Error(0)
}

func (m *MockSFTPClient) MoveFileOnSFTP(srcPath, destPath string) error {
	args := m.Called(srcPath, destPath)
	return args.Error(0)
}

func (m *MockSFTPClient) DeleteFileOnSFTP(filepath string) error {
	args := m.Called(filepath)
	return args.Error(0)
}

func (m *MockSFTPClient) DeleteLocalFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}

func (m *MockRedisStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisStore) Get(ctx context.Context, key string) (interface{}, error) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Error(1)
}

func (m *MockRedisStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(time.Duration), args.Error(1)
}
