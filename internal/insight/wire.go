package insight

import (
	"go.uber.org/zap"

	"salesdash/internal/config"
	"salesdash/internal/insight/client"
	"salesdash/internal/insight/controller"
	"salesdash/internal/insight/service"
)

func NewModule(cfg config.InsightConfig, snapshots controller.SnapshotProvider, metrics service.InsightMetrics, logger *zap.Logger) *controller.InsightController {
	gemini := client.NewGeminiClient(client.Config{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	})
	svc := service.NewInsightService(gemini, metrics, logger)
	limiter := controller.NewLimiter(cfg.RatePerMinute, cfg.Burst)
	return controller.NewInsightController(snapshots, svc, limiter, logger)
}
