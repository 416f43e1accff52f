package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salesdash/internal/domain"
	"salesdash/internal/dto"
	apperrors "salesdash/internal/errors"
	"salesdash/internal/sales/usecase"
)

type DashboardUseCase interface {
	Snapshot() (*usecase.Snapshot, error)
	Orders(status domain.OrderStatus) ([]domain.CombinedOrder, error)
	Reload(ctx context.Context) (*usecase.Snapshot, error)
}

type DashboardController struct {
	useCase DashboardUseCase
	logger  *zap.Logger
}

func NewDashboardController(useCase DashboardUseCase, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *DashboardController) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	snap, err := c.useCase.Snapshot()
	if err != nil {
		c.handleError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DashboardResponse{
		Predictions: dto.NewPredictionDTO(snap.Prediction),
		DailySales:  dto.NewDailySalesDTOs(snap.Daily),
		RegionSales: dto.NewRegionSalesDTOs(snap.Regions),
		Categories:  dto.NewCategorySalesDTOs(snap.Categories),
		Records:     len(snap.Orders),
		Delivered:   snap.Delivered,
		LoadedAt:    snap.LoadedAt,
	})
}

func (c *DashboardController) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	snap, err := c.useCase.Snapshot()
	if err != nil {
		c.handleError(w, uuid.New().String(), err)
		return
	}
	c.writeJSON(w, http.StatusOK, dto.NewPredictionDTO(snap.Prediction))
}

func (c *DashboardController) HandleDailySales(w http.ResponseWriter, r *http.Request) {
	snap, err := c.useCase.Snapshot()
	if err != nil {
		c.handleError(w, uuid.New().String(), err)
		return
	}
	c.writeJSON(w, http.StatusOK, dto.NewDailySalesDTOs(snap.Daily))
}

func (c *DashboardController) HandleRegionSales(w http.ResponseWriter, r *http.Request) {
	snap, err := c.useCase.Snapshot()
	if err != nil {
		c.handleError(w, uuid.New().String(), err)
		return
	}
	c.writeJSON(w, http.StatusOK, dto.NewRegionSalesDTOs(snap.Regions))
}

func (c *DashboardController) HandleCategorySales(w http.ResponseWriter, r *http.Request) {
	snap, err := c.useCase.Snapshot()
	if err != nil {
		c.handleError(w, uuid.New().String(), err)
		return
	}
	c.writeJSON(w, http.StatusOK, dto.NewCategorySalesDTOs(snap.Categories))
}

func (c *DashboardController) HandleOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	status := domain.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		c.handleError(w, traceID, apperrors.NewValidationError("invalid status filter", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of Delivered, Pending, Cancelled",
		}))
		return
	}

	orders, err := c.useCase.Orders(status)
	if err != nil {
		c.handleError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrdersResponse{
		Orders: dto.NewOrderDTOs(orders),
		Total:  len(orders),
	})
}

func (c *DashboardController) HandleReload(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	snap, err := c.useCase.Reload(r.Context())
	if err != nil {
		logger.Warn("manual reload failed", zap.Error(err))
		c.handleError(w, traceID, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ReloadResponse{
		TraceID:   traceID,
		Records:   len(snap.Orders),
		Delivered: snap.Delivered,
		LoadedAt:  snap.LoadedAt,
	})
}

func (c *DashboardController) handleError(w http.ResponseWriter, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	if _, ok := apperrors.IsLengthMismatchError(err); ok {
		c.writeError(w, traceID, http.StatusUnprocessableEntity, "LENGTH_MISMATCH", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	if errors.Is(err, usecase.ErrDatasetNotLoaded) {
		c.writeError(w, traceID, http.StatusServiceUnavailable, "DATASET_NOT_LOADED", err.Error(), nil)
		return
	}

	c.logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (c *DashboardController) writeError(w http.ResponseWriter, traceID string, status int, code, message string, details []apperrors.ValidationDetail) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Error:     code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *DashboardController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
