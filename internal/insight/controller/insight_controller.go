package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"salesdash/internal/domain"
	"salesdash/internal/dto"
	"salesdash/internal/sales/usecase"
)

type SnapshotProvider interface {
	Snapshot() (*usecase.Snapshot, error)
}

type InsightGenerator interface {
	GenerateInsights(ctx context.Context, orders []domain.CombinedOrder) string
}

type InsightController struct {
	snapshots SnapshotProvider
	generator InsightGenerator
	limiter   *rate.Limiter
	logger    *zap.Logger
}

func NewInsightController(snapshots SnapshotProvider, generator InsightGenerator, limiter *rate.Limiter, logger *zap.Logger) *InsightController {
	return &InsightController{
		snapshots: snapshots,
		generator: generator,
		limiter:   limiter,
		logger:    logger,
	}
}

// NewLimiter allows perMinute insight requests with the given burst. A
// non-positive perMinute disables limiting.
func NewLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

func (c *InsightController) HandleGenerateInsights(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if !c.limiter.Allow() {
		logger.Warn("insight request rate limited")
		c.writeError(w, traceID, http.StatusTooManyRequests, "RATE_LIMITED", "too many insight requests, try again shortly")
		return
	}

	snap, err := c.snapshots.Snapshot()
	if err != nil {
		if errors.Is(err, usecase.ErrDatasetNotLoaded) {
			c.writeError(w, traceID, http.StatusServiceUnavailable, "DATASET_NOT_LOADED", err.Error())
			return
		}
		logger.Error("reading snapshot failed", zap.Error(err))
		c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	logger.Info("generating insights", zap.Int("records", len(snap.Orders)), zap.Int("delivered", snap.Delivered))
	insights := c.generator.GenerateInsights(r.Context(), snap.Orders)

	c.writeJSON(w, http.StatusOK, dto.InsightResponse{
		TraceID:   traceID,
		Insights:  insights,
		Timestamp: time.Now().UTC(),
	})
}

func (c *InsightController) writeError(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *InsightController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
