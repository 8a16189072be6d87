package router

import (
	"globe/machop_loan_ledger/configs"
	"globe/machop_loan_ledger/internal/app/handlers"
	"globe/machop_loan_ledger/internal/app/middleware"
	"globe/machop_loan_ledger/internal/pkg/kafka/producer"
	"globe/machop_loan_ledger/internal/pkg/notification"
	"globe/machop_loan_ledger/internal/pkg/pubsub"
	"globe/machop_loan_ledger/internal/pkg/services"
	"globe/machop_loan_ledger/internal/pkg/store"
	"globe/machop_loan_ledger/internal/pkg/store/repository"
	"globe/machop_loan_ledger/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	loanRepo := store.NewLoanRepository()
	paymentRepo := store.NewPaymentRepository()
	areaRepo := store.NewAreaRepository()
	areaCostRepo := store.NewAreaCostRepository()
	batchGuardRepo := store.NewBatchInProgressRepository()

	kafkaService := producer.NewKafkaService()
	notificationService := notification.NewNotificationService(pubsubPublisher)
	sftpService := services.NewSftpService()

	loanService := services.NewLoanService(loanRepo, paymentRepo)
	paymentService := services.NewPaymentService(loanRepo, paymentRepo, kafkaService, notificationService)
	batchPostingService := services.NewBatchPostingService(loanRepo, paymentRepo, batchGuardRepo, kafkaService)
	penaltyAccrualService := services.NewPenaltyAccrualService(loanRepo, paymentRepo, kafkaService, workerPool)
	balanceSheetService := services.NewBalanceSheetService(loanRepo, paymentRepo, redisAdapter)
	earningsService := services.NewEarningsService(loanRepo, paymentRepo, redisAdapter)
	collectionReportService := services.NewCollectionReportService(paymentRepo, sftpService)
	areaService := services.NewAreaService(areaRepo, areaCostRepo, loanRepo, paymentRepo)
	kafkaRetryService := producer.NewKafkaRetryService(paymentRepo, loanRepo)

	loanHandler := handlers.NewLoanHandler(loanService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	batchPostingHandler := handlers.NewBatchPostingHandler(batchPostingService)
	penaltyAccrualHandler := handlers.NewPenaltyAccrualHandler(penaltyAccrualService)
	reportHandler := handlers.NewReportHandler(balanceSheetService, earningsService)
	collectionReportHandler := handlers.NewCollectionReportHandler(collectionReportService)
	areaHandler := handlers.NewAreaHandler(areaService)
	kafkaRetryHandler := handlers.NewKafkaRetryHandler(kafkaRetryService)

	r.POST("/LedgerServices/Machop/Loans", loanHandler.CreateLoan)
	r.GET("/LedgerServices/Machop/Loans", loanHandler.ListLoans)
	r.GET("/LedgerServices/Machop/Loans/:serialNumber", loanHandler.GetLoan)
	r.PUT("/LedgerServices/Machop/Loans/:serialNumber", loanHandler.UpdateLoan)
	r.DELETE("/LedgerServices/Machop/Loans/:serialNumber", loanHandler.DeleteLoan)

	r.POST("/LedgerServices/Machop/Payments", paymentHandler.AddPayment)
	r.DELETE("/LedgerServices/Machop/Payments/:paymentId", paymentHandler.DeletePayment)
	r.POST("/LedgerServices/Machop/Payments/Batch", batchPostingHandler.PostBatch)

	r.POST("/LedgerServices/Machop/PenaltyAccrual", penaltyAccrualHandler.RunSweep)

	r.GET("/LedgerServices/Machop/BalanceSheet/:serialNumber", reportHandler.BalanceSheet)
	r.GET("/LedgerServices/Machop/Earnings", reportHandler.Earnings)
	r.GET("/LedgerServices/Machop/Earnings/Daily", reportHandler.DailyEarnings)
	r.GET("/LedgerServices/Machop/Earnings/Weekly", reportHandler.WeeklyEarnings)
	r.GET("/LedgerServices/Machop/Earnings/Monthly", reportHandler.MonthlyEarnings)
	r.GET("/LedgerServices/Machop/Dashboard", reportHandler.Dashboard)
	r.GET("/LedgerServices/Machop/CollectionReport", collectionReportHandler.GenerateCollectionReport)

	r.POST("/LedgerServices/Machop/Areas", areaHandler.CreateArea)
	r.GET("/LedgerServices/Machop/Areas", areaHandler.ListAreas)
	r.PUT("/LedgerServices/Machop/Areas/:id", areaHandler.UpdateArea)
	r.DELETE("/LedgerServices/Machop/Areas/:id", areaHandler.DeleteArea)
	r.GET("/LedgerServices/Machop/Areas/:id/Stats", areaHandler.AreaStats)
	r.GET("/LedgerServices/Machop/Areas/:id/Cost", areaHandler.AreaCostSummary)
	r.PUT("/LedgerServices/Machop/Areas/:id/Cost", areaHandler.UpdateAreaCost)

	r.GET("/LedgerServices/Machop/kafkaRetry", kafkaRetryHandler.RetryLedgerEventMessages)

	r.GET("/LedgerServices/Machop/Test", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
