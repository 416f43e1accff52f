package dto

import (
	"time"

	"salesdash/internal/domain"
)

type PredictionDTO struct {
	Monthly   float64 `json:"monthly"`
	Quarterly float64 `json:"quarterly"`
}

type DailySalesDTO struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"totalSales"`
}

type RegionSalesDTO struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type CategorySalesDTO struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

type DashboardResponse struct {
	Predictions PredictionDTO      `json:"predictions"`
	DailySales  []DailySalesDTO    `json:"dailySales"`
	RegionSales []RegionSalesDTO   `json:"regionSales"`
	Categories  []CategorySalesDTO `json:"categorySales"`
	Records     int                `json:"records"`
	Delivered   int                `json:"delivered"`
	LoadedAt    time.Time          `json:"loadedAt"`
}

type OrderDTO struct {
	OrderID      string              `json:"orderId"`
	Date         string              `json:"date"`
	CustomerName string              `json:"customerName"`
	ProductName  string              `json:"productName"`
	Category     string              `json:"category"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    float64             `json:"unitPrice"`
	TotalAmount  float64             `json:"totalAmount"`
	PaymentMode  string              `json:"paymentMode"`
	SalesRep     string              `json:"salesRep"`
	Status       string              `json:"status"`
	Region       string              `json:"region"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Verified     domain.VerifiedFlag `json:"verified"`
	Comment      string              `json:"comment"`
}

type OrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
	Total  int        `json:"total"`
}

type ReloadResponse struct {
	TraceID   string    `json:"traceId"`
	Records   int       `json:"records"`
	Delivered int       `json:"delivered"`
	LoadedAt  time.Time `json:"loadedAt"`
}
