package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salesdash/internal/domain"
)

const FailurePrefix = "An error occurred while generating AI insights"

const promptTemplate = `
You are a senior sales analyst. Based on the following sales data (in JSON format), provide a concise analysis of sales performance.
Focus on:
1.  Overall sales trend.
2.  Top-performing categories and regions.
3.  Any potential insights or recommendations for the sales team.
Keep the analysis professional and brief (under 150 words).

Data:
%s
`

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

type InsightMetrics interface {
	ObserveInsight(outcome string, elapsed time.Duration)
}

type InsightService struct {
	summarizer Summarizer
	metrics    InsightMetrics
	logger     *zap.Logger
}

func NewInsightService(summarizer Summarizer, metrics InsightMetrics, logger *zap.Logger) *InsightService {
	return &InsightService{
		summarizer: summarizer,
		metrics:    metrics,
		logger:     logger,
	}
}

// GenerateInsights asks the summarizer for an analysis of the delivered
// orders. It always returns text: the model output verbatim on success, or a
// message starting with FailurePrefix that carries the failure detail.
func (s *InsightService) GenerateInsights(ctx context.Context, orders []domain.CombinedOrder) string {
	start := time.Now()

	prompt, err := BuildPrompt(Reduce(orders))
	if err != nil {
		return s.fail(err, start)
	}

	text, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		return s.fail(err, start)
	}

	s.metrics.ObserveInsight("success", time.Since(start))
	return text
}

func (s *InsightService) fail(err error, start time.Time) string {
	s.metrics.ObserveInsight("failure", time.Since(start))
	s.logger.Error("generating insights failed", zap.Error(err))
	return FailureMessage(err)
}

func FailureMessage(err error) string {
	return fmt.Sprintf("%s: %s. Please ensure your Gemini API key is configured correctly.", FailurePrefix, err.Error())
}

// Reduce projects delivered orders onto the fields the summarizer may see.
// Customer name, email and phone never leave the process.
func Reduce(orders []domain.CombinedOrder) []domain.ReducedOrder {
	reduced := make([]domain.ReducedOrder, 0, len(orders))
	for _, o := range orders {
		if !o.IsDelivered() {
			continue
		}
		reduced = append(reduced, domain.ReducedOrder{
			Date:        o.Date,
			Category:    o.Category,
			TotalAmount: o.TotalAmount.InexactFloat64(),
			Region:      o.Region,
		})
	}
	return reduced
}

func BuildPrompt(data []domain.ReducedOrder) (string, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding sales data: %w", err)
	}
	return fmt.Sprintf(promptTemplate, payload), nil
}
