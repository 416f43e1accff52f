package service

import (
	"fmt"

	"salesdash/internal/domain"
	apperrors "salesdash/internal/errors"
)

// ValidateDataset checks field-level constraints of both lists and reports
// every violation at once.
func ValidateDataset(orders []domain.OrderFact, statuses []domain.StatusFact) error {
	var details []apperrors.ValidationDetail
	seen := make(map[string]bool, len(orders))

	for i, o := range orders {
		field := fmt.Sprintf("orders[%d]", i)

		if o.OrderID == "" {
			details = append(details, apperrors.ValidationDetail{Field: field + ".orderId", Message: "orderId is required"})
		} else if seen[o.OrderID] {
			details = append(details, apperrors.ValidationDetail{Field: field + ".orderId", Message: "orderId must not be duplicated"})
		}
		seen[o.OrderID] = true

		if o.Quantity <= 0 {
			details = append(details, apperrors.ValidationDetail{Field: field + ".quantity", Message: "quantity must be a positive integer"})
		}
		if !o.UnitPrice.IsPositive() {
			details = append(details, apperrors.ValidationDetail{Field: field + ".unitPrice", Message: "unitPrice must be positive"})
		}
	}

	for i, s := range statuses {
		if !s.Status.IsValid() {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("statuses[%d].status", i),
				Message: fmt.Sprintf("unknown status %q", s.Status),
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("dataset validation failed", details...)
	}
	return nil
}
