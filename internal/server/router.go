package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	insightctrl "salesdash/internal/insight/controller"
	salesctrl "salesdash/internal/sales/controller"
)

func NewRouter(sales *salesctrl.DashboardController, insights *insightctrl.InsightController, metrics http.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", sales.HandleDashboard)
		r.Get("/orders", sales.HandleOrders)
		r.Get("/predictions", sales.HandlePredictions)
		r.Route("/sales", func(r chi.Router) {
			r.Get("/daily", sales.HandleDailySales)
			r.Get("/regions", sales.HandleRegionSales)
			r.Get("/categories", sales.HandleCategorySales)
		})
		r.Post("/insights", insights.HandleGenerateInsights)
		r.Post("/dataset/reload", sales.HandleReload)
	})

	return r
}

// RequestLogger logs one line per request, leveled by response status.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if path == "/health" || path == "/metrics" {
				return
			}

			fields := []zap.Field{
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.Int("responseSize", ww.BytesWritten()),
			}
			if r.URL.RawQuery != "" {
				fields = append(fields, zap.String("query", r.URL.RawQuery))
			}

			switch status := ww.Status(); {
			case status >= 500:
				logger.Error("request failed", fields...)
			case status >= 400:
				logger.Warn("client request error", fields...)
			default:
				logger.Debug("request completed", fields...)
			}
		})
	}
}
