package service

import (
	"github.com/shopspring/decimal"

	"salesdash/internal/domain"
)

const (
	daysPerMonth   = 30
	daysPerQuarter = 90
)

// Delivered returns the completed subset of orders, preserving order.
func Delivered(orders []domain.CombinedOrder) []domain.CombinedOrder {
	delivered := make([]domain.CombinedOrder, 0, len(orders))
	for _, o := range orders {
		if o.IsDelivered() {
			delivered = append(delivered, o)
		}
	}
	return delivered
}

// Forecast projects monthly and quarterly sales as a flat extrapolation of the
// average delivered sales per distinct order date.
func Forecast(orders []domain.CombinedOrder) domain.Prediction {
	delivered := Delivered(orders)
	if len(delivered) == 0 {
		return domain.Prediction{Monthly: decimal.Zero, Quarterly: decimal.Zero}
	}

	total := decimal.Zero
	days := make(map[string]struct{})
	for _, o := range delivered {
		total = total.Add(o.TotalAmount)
		days[o.Date] = struct{}{}
	}

	averageDaily := total.Div(decimal.NewFromInt(int64(len(days))))

	return domain.Prediction{
		Monthly:   averageDaily.Mul(decimal.NewFromInt(daysPerMonth)),
		Quarterly: averageDaily.Mul(decimal.NewFromInt(daysPerQuarter)),
	}
}
