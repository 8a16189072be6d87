package handlers

import (
	"net/http"
	"time"

	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/services"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	balanceSheetService services.BalanceSheetServiceInterface
	earningsService     services.EarningsServiceInterface
}

func NewReportHandler(balanceSheetService services.BalanceSheetServiceInterface, earningsService services.EarningsServiceInterface) *ReportHandler {
	return &ReportHandler{
		balanceSheetService: balanceSheetService,
		earningsService:     earningsService,
	}
}

func (h *ReportHandler) BalanceSheet(c *gin.Context) {
	serialNumber := c.Param("serialNumber")

	reportDate := time.Now().UTC()
	if raw := c.Query("reportDate"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		reportDate = parsed
	}

	var startDate *time.Time
	if raw := c.Query("startDate"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		startDate = &parsed
	}

	sheet, err := h.balanceSheetService.BalanceSheet(c.Request.Context(), serialNumber, startDate, reportDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// Earnings recognizes earnings over an explicit from/to window.
func (h *ReportHandler) Earnings(c *gin.Context) {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.renderEarnings(c, from, to.AddDate(0, 0, 1))
}

// DailyEarnings covers the single day given by date, default today.
func (h *ReportHandler) DailyEarnings(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		day = parsed
	}

	from, to := common.DayBounds(day)
	h.renderEarnings(c, from, to)
}

// WeeklyEarnings covers the 7 days ending on date, default today.
func (h *ReportHandler) WeeklyEarnings(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		day = parsed
	}

	_, to := common.DayBounds(day)
	h.renderEarnings(c, to.AddDate(0, 0, -7), to)
}

// MonthlyEarnings covers the calendar month given by month, default current.
func (h *ReportHandler) MonthlyEarnings(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("month"); raw != "" {
		parsed, err := utils.ParseMonth(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		day = parsed
	}

	from, to := common.MonthBounds(day)
	h.renderEarnings(c, from, to)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.earningsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) renderEarnings(c *gin.Context, from, to time.Time) {
	report, err := h.earningsService.EarningsForWindow(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
