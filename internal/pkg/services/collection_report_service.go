package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/logger"
	"globe/machop_loan_ledger/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollectionReportService struct {
	paymentStore PaymentStoreInterface
	sftpClient   SFTPClientInterface
}

func NewCollectionReportService(paymentStore PaymentStoreInterface, sftpClient SFTPClientInterface) *CollectionReportService {
	return &CollectionReportService{
		paymentStore: paymentStore,
		sftpClient:   sftpClient,
	}
}

// GenerateCollectionReport exports every payment collected on the given date,
// optionally scoped to one area, as a CSV pushed to the partner SFTP drop.
// The local copy is removed after a successful upload.
func (h *CollectionReportService) GenerateCollectionReport(ctx context.Context, date time.Time, areaID *primitive.ObjectID) (*models.CollectionReportSummary, error) {

	payments, err := h.paymentStore.PaymentsByDate(ctx, date, areaID)
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"SerialNumber", "Amount", "Date", "ScheduleKind", "AgentName", "BatchId"},
	}
	var total float64
	for _, payment := range payments {
		records = append(records, []string{
			payment.SerialNumber,
			strconv.FormatFloat(payment.Amount, 'f', 2, 64),
			payment.Date.Format("2006-01-02"),
			payment.ScheduleKind,
			payment.AgentName,
			payment.BatchID,
		})
		total += payment.Amount
	}

	fileName := fmt.Sprintf("collection_report_%s.csv", date.Format("2006-01-02"))
	if areaID != nil {
		fileName = fmt.Sprintf("collection_report_%s_%s.csv", date.Format("2006-01-02"), areaID.Hex())
	}

	if err := os.MkdirAll(configs.COLLECTION_REPORT_FOLDER, 0755); err != nil {
		return nil, err
	}
	localPath := filepath.Join(configs.COLLECTION_REPORT_FOLDER, fileName)

	if err := common.WriteCSVFile(localPath, records); err != nil {
		return nil, err
	}

	remotePath := filepath.Join(configs.SFTP_REMOTE_FILE_PATH, fileName)
	if err := h.sftpClient.UploadFileToSFTP(localPath, remotePath); err != nil {
		logger.Error(ctx, "Failed to upload collection report %s: %v", fileName, err)
		return nil, err
	}

	if err := h.sftpClient.DeleteLocalFile(localPath); err != nil {
		logger.Warn(ctx, "Failed to delete local report %s: %v", localPath, err)
	}

	logger.Info(ctx, "Collection report %s exported with %d rows totaling %.2f", fileName, len(payments), total)

	return &models.CollectionReportSummary{
		Date:     date,
		Rows:     len(payments),
		Total:    total,
		FileName: fileName,
	}, nil
}
