package service

import (
	"github.com/shopspring/decimal"

	"salesdash/internal/domain"
)

func order(id, date, category, region string, status domain.OrderStatus, amount int64) domain.CombinedOrder {
	return domain.CombinedOrder{
		OrderFact: domain.OrderFact{
			OrderID:     id,
			Date:        date,
			Category:    category,
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(amount),
			TotalAmount: decimal.NewFromInt(amount),
			PaymentMode: domain.PaymentCash,
		},
		Status: status,
		Region: region,
	}
}

func sampleOrders() []domain.CombinedOrder {
	return []domain.CombinedOrder{
		order("O1", "2024-07-02", "Electronics", "North", domain.OrderStatusDelivered, 1200),
		order("O2", "2024-07-01", "Fashion", "South", domain.OrderStatusDelivered, 300),
		order("O3", "2024-07-02", "Fashion", "West", domain.OrderStatusPending, 999),
		order("O4", "2024-07-03", "Home", "South", domain.OrderStatusDelivered, 1500),
		order("O5", "2024-07-01", "Electronics", "East", domain.OrderStatusCancelled, 5000),
		order("O6", "2024-07-03", "Fashion", "North", domain.OrderStatusDelivered, 450),
	}
}

func undeliveredOrders() []domain.CombinedOrder {
	return []domain.CombinedOrder{
		order("P1", "2024-07-01", "Home", "North", domain.OrderStatusPending, 100),
		order("P2", "2024-07-02", "Home", "South", domain.OrderStatusCancelled, 200),
	}
}

func deliveredTotal(orders []domain.CombinedOrder) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.IsDelivered() {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}
