package report

import (
	"context"
	"errors"
	"net/http"
	"time"

	custom_error "assettracking/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Generator interface {
	Generate(ctx context.Context, now time.Time) (*Report, error)
}

type ReportHandler struct {
	generator Generator
	logger    *zap.Logger
	clock     func() time.Time
}

func NewReportHandler(generator Generator, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		generator: generator,
		logger:    logger,
		clock:     time.Now,
	}
}

func (h *ReportHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/report", h.GetReport)
}

// GetReport builds the report as of now, or as of the RFC3339 "at" query parameter.
func (h *ReportHandler) GetReport(c *gin.Context) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid 'at' parameter, expected RFC3339", "details": err.Error()})
		return
	}

	now := h.clock()
	if !query.At.IsZero() {
		now = query.At
	}

	report, err := h.generator.Generate(c.Request.Context(), now)
	if err != nil {
		h.logger.Error("Unable to generate report", zap.Error(err))
		c.AbortWithStatusJSON(StatusForError(err), gin.H{"error": "Could not generate report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func StatusForError(err error) int {
	var (
		unknownCurrency *custom_error.UnknownCurrencyError
		dangling        *custom_error.DanglingOfficeReferenceError
		invalid         *custom_error.InvalidAssetError
		storage         *custom_error.StorageUnavailableError
	)

	switch {
	case errors.As(err, &storage):
		return http.StatusServiceUnavailable
	case errors.As(err, &unknownCurrency), errors.As(err, &dangling), errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
