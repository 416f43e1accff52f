package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PaymentUPI        PaymentMode = "UPI"
	PaymentCreditCard PaymentMode = "Credit Card"
	PaymentCash       PaymentMode = "Cash"
	PaymentDebitCard  PaymentMode = "Debit Card"
)

type OrderStatus string

const (
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusPending, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderFact is the commercial side of an order as supplied by the data source.
type OrderFact struct {
	OrderID      string          `json:"orderId"`
	Date         string          `json:"date"`
	CustomerName string          `json:"customerName"`
	ProductName  string          `json:"productName"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaymentMode  PaymentMode     `json:"paymentMode"`
}

// StatusFact is the fulfillment side of an order. OrderID is optional; when
// every status of a dataset carries one the join is keyed instead of positional.
type StatusFact struct {
	OrderID  string       `json:"orderId,omitempty"`
	SalesRep string       `json:"salesRep"`
	Status   OrderStatus  `json:"status"`
	Region   string       `json:"region"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Verified VerifiedFlag `json:"verified"`
	Comment  string       `json:"comment"`
}

// CombinedOrder is built once by the joiner and never mutated afterwards.
type CombinedOrder struct {
	OrderFact
	SalesRep string       `json:"salesRep"`
	Status   OrderStatus  `json:"status"`
	Region   string       `json:"region"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Verified VerifiedFlag `json:"verified"`
	Comment  string       `json:"comment"`
}

func Combine(o OrderFact, s StatusFact) CombinedOrder {
	return CombinedOrder{
		OrderFact: o,
		SalesRep:  s.SalesRep,
		Status:    s.Status,
		Region:    s.Region,
		Email:     s.Email,
		Phone:     s.Phone,
		Verified:  s.Verified,
		Comment:   s.Comment,
	}
}

func (o CombinedOrder) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// VerifiedFlag keeps the raw form of the verified field, which sources send
// either as a JSON boolean or as a free-form string ("Yes", "pending", ...).
type VerifiedFlag struct {
	Raw string
}

func NewVerifiedFlag(v bool) VerifiedFlag {
	if v {
		return VerifiedFlag{Raw: "true"}
	}
	return VerifiedFlag{Raw: "false"}
}

// Bool reports whether the flag reads as an affirmative value.
func (f VerifiedFlag) Bool() bool {
	switch strings.ToLower(strings.TrimSpace(f.Raw)) {
	case "true", "yes", "y", "1", "verified":
		return true
	}
	return false
}

func (f VerifiedFlag) String() string {
	return f.Raw
}

func (f VerifiedFlag) MarshalJSON() ([]byte, error) {
	switch f.Raw {
	case "true":
		return []byte("true"), nil
	case "false":
		return []byte("false"), nil
	}
	return json.Marshal(f.Raw)
}

func (f *VerifiedFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = NewVerifiedFlag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("verified must be a boolean or a string: %w", err)
	}
	f.Raw = s
	return nil
}
