package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/internal/domain"
	apperrors "salesdash/internal/errors"
)

func TestValidateDataset_Valid(t *testing.T) {
	assert.NoError(t, ValidateDataset(orderFacts(), statusFacts()))
	assert.NoError(t, ValidateDataset(nil, nil))
}

func TestValidateDataset_CollectsAllDetails(t *testing.T) {
	orders := orderFacts()
	orders[0].Quantity = 0
	orders[1].OrderID = "A"
	orders[2].UnitPrice = decimal.Zero
	statuses := statusFacts()
	statuses[2].Status = domain.OrderStatus("Lost")

	err := ValidateDataset(orders, statuses)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(ve.Details))
	for _, d := range ve.Details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{
		"orders[0].quantity",
		"orders[1].orderId",
		"orders[2].unitPrice",
		"statuses[2].status",
	}, fields)
}

func TestValidateDataset_MissingOrderID(t *testing.T) {
	orders := orderFacts()
	orders[1].OrderID = ""

	ve, ok := apperrors.IsValidationError(ValidateDataset(orders, statusFacts()))
	require.True(t, ok)
	assert.Equal(t, "orderId is required", ve.Details[0].Message)
}
