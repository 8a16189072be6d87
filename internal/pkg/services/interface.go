package services

import (
	"context"
	"time"

	"globe/machop_loan_ledger/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LoanStoreInterface interface {
	InsertLoan(ctx context.Context, loan models.Loan) (bool, error)
	LoanBySerialNumber(ctx context.Context, serialNumber string) (*models.Loan, error)
	LoanByID(ctx context.Context, id primitive.ObjectID) (*models.Loan, error)
	AllLoans(ctx context.Context) ([]models.Loan, error)
	LoansByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Loan, error)
	OverdueLoans(ctx context.Context, now time.Time) ([]models.Loan, error)
	UpdateLoan(ctx context.Context, loan models.Loan) error
	DeleteLoan(ctx context.Context, id primitive.ObjectID) error
}

type PaymentStoreInterface interface {
	InsertPayment(ctx context.Context, payment models.Payment) (bool, error)
	InsertPayments(ctx context.Context, payments []models.Payment) ([]primitive.ObjectID, error)
	PaymentByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	PaymentsByLoanID(ctx context.Context, loanID primitive.ObjectID) ([]models.Payment, error)
	PaymentsInWindow(ctx context.Context, from, to time.Time) ([]models.Payment, error)
	PaymentsByDate(ctx context.Context, date time.Time, areaID *primitive.ObjectID) ([]models.Payment, error)
	DeletePayment(ctx context.Context, id primitive.ObjectID) error
	DeletePaymentsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	DeletePaymentsByLoanID(ctx context.Context, loanID primitive.ObjectID) (int64, error)
	MarkPublishedToKafka(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error)
}

type AreaStoreInterface interface {
	InsertArea(ctx context.Context, area models.Area) (bool, error)
	AreaByID(ctx context.Context, id primitive.ObjectID) (*models.Area, error)
	AllAreas(ctx context.Context) ([]models.Area, error)
	UpdateArea(ctx context.Context, area models.Area) error
	DeleteArea(ctx context.Context, id primitive.ObjectID) error
}

type AreaCostStoreInterface interface {
	CostByAreaMonth(ctx context.Context, areaID primitive.ObjectID, month string) (*models.AreaCost, error)
	UpsertCost(ctx context.Context, cost models.AreaCost) error
}

type BatchGuardStoreInterface interface {
	IsBatchInProgress(ctx context.Context, batchKey string) (bool, error)
	CreateBatchInProgressEntry(ctx context.Context, entry models.BatchInProgress) (bool, error)
	DeleteBatchInProgressByKey(ctx context.Context, batchKey string) (bool, error)
}

type KafkaServiceInterface interface {
	PublishLedgerEventToKafka(ctx context.Context, paymentID string, event models.LedgerEvent) error
}

type ReceiptNotifierInterface interface {
	NotifyReceipt(ctx context.Context, loan models.Loan, payment models.Payment) error
}

type SFTPClientInterface interface {
	UploadFileToSFTP(localFilePath, remoteFilePath string) error
	MoveFileOnSFTP(srcPath, destPath string) error
	DeleteFileOnSFTP(filepath string) error
	DeleteLocalFile(filePath string) error
}

type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Handler-facing service contracts.

type LoanServiceInterface interface {
	CreateLoan(ctx context.Context, request models.CreateLoanRequest) (*models.Loan, error)
	UpdateLoan(ctx context.Context, serialNumber string, request models.UpdateLoanRequest) (*models.Loan, error)
	LoanBySerialNumber(ctx context.Context, serialNumber string) (*models.Loan, error)
	AllLoans(ctx context.Context) ([]models.Loan, error)
	DeleteLoan(ctx context.Context, serialNumber string) error
}

type PaymentServiceInterface interface {
	AddPayment(ctx context.Context, request models.AddPaymentRequest) (*models.Payment, *models.Loan, error)
	DeletePayment(ctx context.Context, paymentID string) (*models.Loan, error)
}

type BatchPostingServiceInterface interface {
	ProcessBatch(ctx context.Context, request models.BatchPostingRequest) (*models.BatchResult, error)
}

type PenaltyAccrualServiceInterface interface {
	RunSweep(ctx context.Context, now time.Time) (*models.SweepResult, error)
}

type BalanceSheetServiceInterface interface {
	BalanceSheet(ctx context.Context, serialNumber string, startDate *time.Time, reportDate time.Time) (*models.BalanceSheetData, error)
}

type EarningsServiceInterface interface {
	EarningsForWindow(ctx context.Context, from, to time.Time) (*models.EarningsReport, error)
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
}

type CollectionReportServiceInterface interface {
	GenerateCollectionReport(ctx context.Context, date time.Time, areaID *primitive.ObjectID) (*models.CollectionReportSummary, error)
}

type AreaServiceInterface interface {
	CreateArea(ctx context.Context, request models.AreaRequest) (*models.Area, error)
	UpdateArea(ctx context.Context, id string, request models.AreaRequest) (*models.Area, error)
	DeleteArea(ctx context.Context, id string) error
	AllAreas(ctx context.Context) ([]models.Area, error)
	AreaStats(ctx context.Context, id string) (*models.AreaStats, error)
	AreaCostSummary(ctx context.Context, id string, month string) (*models.AreaCostSummary, error)
	UpdateAreaCost(ctx context.Context, id string, month string, request models.AreaCostUpdateRequest) (*models.AreaCost, error)
}
