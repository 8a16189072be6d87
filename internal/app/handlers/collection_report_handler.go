package handlers

import (
	"net/http"
	"time"

	"globe/machop_loan_ledger/internal/pkg/common"
	"globe/machop_loan_ledger/internal/pkg/consts"
	"globe/machop_loan_ledger/internal/pkg/services"
	"globe/machop_loan_ledger/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollectionReportHandler struct {
	collectionReportService services.CollectionReportServiceInterface
}

func NewCollectionReportHandler(collectionReportService services.CollectionReportServiceInterface) *CollectionReportHandler {
	return &CollectionReportHandler{collectionReportService: collectionReportService}
}

func (h *CollectionReportHandler) GenerateCollectionReport(c *gin.Context) {
	// Collections are posted against the Philippine business day.
	date := common.ConvertUTCToPHT(time.Now().UTC())
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		date = parsed
	}

	var areaID *primitive.ObjectID
	if raw := c.Query("areaId"); raw != "" {
		if !utils.IsValidObjectIDHex(raw) {
			respondError(c, consts.ErrorAreaNotFound)
			return
		}
		id, _ := primitive.ObjectIDFromHex(raw)
		areaID = &id
	}

	summary, err := h.collectionReportService.GenerateCollectionReport(c.Request.Context(), date, areaID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
