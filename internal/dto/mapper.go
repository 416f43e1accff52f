package dto

import (
	"salesdash/internal/domain"
	"salesdash/internal/sales/service"
)

func NewPredictionDTO(p domain.Prediction) PredictionDTO {
	return PredictionDTO{
		Monthly:   p.Monthly.InexactFloat64(),
		Quarterly: p.Quarterly.InexactFloat64(),
	}
}

func NewDailySalesDTOs(points []domain.SeriesPoint) []DailySalesDTO {
	out := make([]DailySalesDTO, 0, len(points))
	for _, p := range points {
		out = append(out, DailySalesDTO{Date: p.Key, TotalSales: p.Total.InexactFloat64()})
	}
	return out
}

func NewRegionSalesDTOs(points []domain.SeriesPoint) []RegionSalesDTO {
	out := make([]RegionSalesDTO, 0, len(points))
	for _, p := range points {
		out = append(out, RegionSalesDTO{Name: p.Key, Value: p.Total.InexactFloat64()})
	}
	return out
}

func NewCategorySalesDTOs(points []domain.SeriesPoint) []CategorySalesDTO {
	total := service.SeriesTotal(points)
	out := make([]CategorySalesDTO, 0, len(points))
	for _, p := range points {
		out = append(out, CategorySalesDTO{
			Name:  p.Key,
			Value: p.Total.InexactFloat64(),
			Share: service.Share(p.Total, total).InexactFloat64(),
		})
	}
	return out
}

func NewOrderDTOs(orders []domain.CombinedOrder) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderDTO{
			OrderID:      o.OrderID,
			Date:         o.Date,
			CustomerName: o.CustomerName,
			ProductName:  o.ProductName,
			Category:     o.Category,
			Quantity:     o.Quantity,
			UnitPrice:    o.UnitPrice.InexactFloat64(),
			TotalAmount:  o.TotalAmount.InexactFloat64(),
			PaymentMode:  string(o.PaymentMode),
			SalesRep:     o.SalesRep,
			Status:       string(o.Status),
			Region:       o.Region,
			Email:        o.Email,
			Phone:        o.Phone,
			Verified:     o.Verified,
			Comment:      o.Comment,
		})
	}
	return out
}
