package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"salesdash/internal/domain"
	"salesdash/internal/dto"
	"salesdash/internal/infrastructure/metrics"
	insightctrl "salesdash/internal/insight/controller"
	salesctrl "salesdash/internal/sales/controller"
	"salesdash/internal/sales/usecase"
)

type stubDashboard struct {
	snap *usecase.Snapshot
}

func (s *stubDashboard) Snapshot() (*usecase.Snapshot, error) { return s.snap, nil }

func (s *stubDashboard) Orders(status domain.OrderStatus) ([]domain.CombinedOrder, error) {
	return s.snap.Orders, nil
}

func (s *stubDashboard) Reload(ctx context.Context) (*usecase.Snapshot, error) { return s.snap, nil }

type stubGenerator struct{}

func (stubGenerator) GenerateInsights(ctx context.Context, orders []domain.CombinedOrder) string {
	return "insight"
}

func newTestRouter(logger *zap.Logger) http.Handler {
	orders := []domain.CombinedOrder{
		domain.Combine(domain.OrderFact{
			OrderID:     "ORD-1",
			Date:        "2024-07-01",
			Category:    "Books",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(300),
			TotalAmount: decimal.NewFromInt(300),
			PaymentMode: domain.PaymentUPI,
		}, domain.StatusFact{Status: domain.OrderStatusDelivered, Region: "North"}),
	}
	dash := &stubDashboard{snap: usecase.NewSnapshot(orders, time.Now())}
	reg := metrics.NewRegistry()

	sales := salesctrl.NewDashboardController(dash, logger)
	insights := insightctrl.NewInsightController(dash, stubGenerator{}, insightctrl.NewLimiter(0, 0), logger)
	return NewRouter(sales, insights, reg.Handler(), logger)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(zap.NewNop())

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/dashboard", http.StatusOK},
		{http.MethodGet, "/api/orders", http.StatusOK},
		{http.MethodGet, "/api/predictions", http.StatusOK},
		{http.MethodGet, "/api/sales/daily", http.StatusOK},
		{http.MethodGet, "/api/sales/regions", http.StatusOK},
		{http.MethodGet, "/api/sales/categories", http.StatusOK},
		{http.MethodPost, "/api/insights", http.StatusOK},
		{http.MethodPost, "/api/dataset/reload", http.StatusOK},
		{http.MethodGet, "/api/insights", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_Predictions(t *testing.T) {
	router := newTestRouter(zap.NewNop())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/predictions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PredictionDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 9000.0, resp.Monthly)
	assert.Equal(t, 27000.0, resp.Quarterly)
}

func TestRequestLogger_SkipsHealth(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newTestRouter(zap.New(core))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, logs.FilterMessage("request completed").Len())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/sales/daily", nil))
	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/sales/daily", entries[0].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["requestId"])
}
