package domain

import "github.com/shopspring/decimal"

type Prediction struct {
	Monthly   decimal.Decimal
	Quarterly decimal.Decimal
}

// SeriesPoint is one bar, line vertex or slice of a chart.
type SeriesPoint struct {
	Key   string
	Total decimal.Decimal
}

// ReducedOrder is the PII-free projection sent to the summarization service.
type ReducedOrder struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	TotalAmount float64 `json:"totalAmount"`
	Region      string  `json:"region"`
}
