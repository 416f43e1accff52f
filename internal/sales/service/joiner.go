package service

import (
	"fmt"

	"salesdash/internal/domain"
	apperrors "salesdash/internal/errors"
)

// Join pairs every order with its status. Statuses that all carry an order id
// are matched by that id; otherwise the two lists are paired by index.
func Join(orders []domain.OrderFact, statuses []domain.StatusFact) ([]domain.CombinedOrder, error) {
	if len(orders) != len(statuses) {
		return nil, apperrors.NewLengthMismatchError(len(orders), len(statuses))
	}

	if isKeyed(statuses) {
		return joinByOrderID(orders, statuses)
	}

	combined := make([]domain.CombinedOrder, len(orders))
	for i := range orders {
		combined[i] = domain.Combine(orders[i], statuses[i])
	}
	return combined, nil
}

func isKeyed(statuses []domain.StatusFact) bool {
	if len(statuses) == 0 {
		return false
	}
	for _, s := range statuses {
		if s.OrderID == "" {
			return false
		}
	}
	return true
}

func joinByOrderID(orders []domain.OrderFact, statuses []domain.StatusFact) ([]domain.CombinedOrder, error) {
	byID := make(map[string]domain.StatusFact, len(statuses))
	for i, s := range statuses {
		if _, dup := byID[s.OrderID]; dup {
			return nil, apperrors.NewValidationError("duplicate status for order", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("statuses[%d].orderId", i),
				Message: fmt.Sprintf("order %s already has a status", s.OrderID),
			})
		}
		byID[s.OrderID] = s
	}

	combined := make([]domain.CombinedOrder, len(orders))
	for i, o := range orders {
		s, ok := byID[o.OrderID]
		if !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("status for order %s not found", o.OrderID))
		}
		combined[i] = domain.Combine(o, s)
	}
	return combined, nil
}
