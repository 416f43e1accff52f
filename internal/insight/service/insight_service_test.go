package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salesdash/internal/domain"
)

// Mock implementations
type mockSummarizer struct {
	SummarizeFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	return m.SummarizeFunc(ctx, prompt)
}

type mockInsightMetrics struct {
	outcomes []string
}

func (m *mockInsightMetrics) ObserveInsight(outcome string, elapsed time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func combined(id, customer, email string, status domain.OrderStatus, amount string) domain.CombinedOrder {
	return domain.CombinedOrder{
		OrderFact: domain.OrderFact{
			OrderID:      id,
			Date:         "2024-07-01",
			CustomerName: customer,
			Category:     "Fashion",
			Quantity:     1,
			UnitPrice:    decimal.RequireFromString(amount),
			TotalAmount:  decimal.RequireFromString(amount),
		},
		Status: status,
		Region: "West",
		Email:  email,
		Phone:  "+91 9800000000",
	}
}

func testOrders() []domain.CombinedOrder {
	return []domain.CombinedOrder{
		combined("1", "Meera Nair", "meera@example.com", domain.OrderStatusDelivered, "1799.50"),
		combined("2", "Arjun Das", "arjun@example.com", domain.OrderStatusPending, "999"),
	}
}

// Tests

func TestGenerateInsights_ReturnsTextVerbatim(t *testing.T) {
	var captured string
	summarizer := &mockSummarizer{
		SummarizeFunc: func(ctx context.Context, prompt string) (string, error) {
			captured = prompt
			return "  Sales grew steadily.\n", nil
		},
	}
	metrics := &mockInsightMetrics{}
	svc := NewInsightService(summarizer, metrics, zap.NewNop())

	text := svc.GenerateInsights(context.Background(), testOrders())

	assert.Equal(t, "  Sales grew steadily.\n", text)
	assert.Equal(t, []string{"success"}, metrics.outcomes)

	assert.Contains(t, captured, "You are a senior sales analyst.")
	assert.Contains(t, captured, "under 150 words")
	assert.Contains(t, captured, `"totalAmount": 1799.5`)
	assert.Contains(t, captured, `"region": "West"`)
	assert.NotContains(t, captured, "Meera Nair")
	assert.NotContains(t, captured, "meera@example.com")
	assert.NotContains(t, captured, "9800000000")
	assert.NotContains(t, captured, "999", "pending orders must not be sent")
}

func TestGenerateInsights_FailureBecomesMessage(t *testing.T) {
	summarizer := &mockSummarizer{
		SummarizeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("API key not valid")
		},
	}
	metrics := &mockInsightMetrics{}
	svc := NewInsightService(summarizer, metrics, zap.NewNop())

	var text string
	assert.NotPanics(t, func() {
		text = svc.GenerateInsights(context.Background(), testOrders())
	})

	assert.True(t, strings.HasPrefix(text, FailurePrefix), text)
	assert.Contains(t, text, "API key not valid")
	assert.Equal(t, []string{"failure"}, metrics.outcomes)
}

func TestGenerateInsights_NoDeliveredOrdersStillAsks(t *testing.T) {
	var captured string
	summarizer := &mockSummarizer{
		SummarizeFunc: func(ctx context.Context, prompt string) (string, error) {
			captured = prompt
			return "No completed sales yet.", nil
		},
	}
	svc := NewInsightService(summarizer, &mockInsightMetrics{}, zap.NewNop())

	text := svc.GenerateInsights(context.Background(), nil)

	assert.Equal(t, "No completed sales yet.", text)
	assert.Contains(t, captured, "Data:\n[]")
}

func TestReduce_DropsPersonalFields(t *testing.T) {
	reduced := Reduce(testOrders())

	require.Len(t, reduced, 1)
	assert.Equal(t, domain.ReducedOrder{
		Date:        "2024-07-01",
		Category:    "Fashion",
		TotalAmount: 1799.5,
		Region:      "West",
	}, reduced[0])
}

func TestFailureMessage(t *testing.T) {
	msg := FailureMessage(errors.New("quota exceeded"))

	assert.Equal(t, "An error occurred while generating AI insights: quota exceeded. Please ensure your Gemini API key is configured correctly.", msg)
}
