package service

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"salesdash/internal/domain"
)

const dayLabelLayout = "Jan 2"

var sourceDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

type keyFunc func(domain.CombinedOrder) string

// sumByKey folds the delivered orders into one running total per key. Points
// come out in first-occurrence order.
func sumByKey(orders []domain.CombinedOrder, key keyFunc) []domain.SeriesPoint {
	index := make(map[string]int)
	points := make([]domain.SeriesPoint, 0)

	for _, o := range orders {
		if !o.IsDelivered() {
			continue
		}
		k := key(o)
		i, ok := index[k]
		if !ok {
			i = len(points)
			index[k] = i
			points = append(points, domain.SeriesPoint{Key: k, Total: decimal.Zero})
		}
		points[i].Total = points[i].Total.Add(o.TotalAmount)
	}

	return points
}

// DailySales sums delivered sales per order date. Keys are rewritten to short
// labels such as "Jul 3" and the points are ordered by the day the label
// denotes; labels that cannot be read as a day keep their relative order at
// the end.
func DailySales(orders []domain.CombinedOrder) []domain.SeriesPoint {
	points := sumByKey(orders, func(o domain.CombinedOrder) string { return o.Date })

	for i := range points {
		points[i].Key = DayLabel(points[i].Key)
	}

	slices.SortStableFunc(points, func(a, b domain.SeriesPoint) int {
		ta, okA := parseDayLabel(a.Key)
		tb, okB := parseDayLabel(b.Key)
		switch {
		case okA && okB:
			return ta.Compare(tb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})

	return points
}

// RegionSales sums delivered sales per region, highest revenue first.
func RegionSales(orders []domain.CombinedOrder) []domain.SeriesPoint {
	points := sumByKey(orders, func(o domain.CombinedOrder) string { return o.Region })

	slices.SortStableFunc(points, func(a, b domain.SeriesPoint) int {
		return b.Total.Cmp(a.Total)
	})

	return points
}

// CategorySales sums delivered sales per category in first-occurrence order.
func CategorySales(orders []domain.CombinedOrder) []domain.SeriesPoint {
	return sumByKey(orders, func(o domain.CombinedOrder) string { return o.Category })
}

// Share returns part as a percentage of total rounded to one decimal place,
// or zero when total is zero.
func Share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}

// SeriesTotal is the sum of every point in a series.
func SeriesTotal(points []domain.SeriesPoint) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Total)
	}
	return total
}

// DayLabel formats a source date as a short month/day label. Unparseable
// dates are returned unchanged.
func DayLabel(raw string) string {
	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dayLabelLayout)
		}
	}
	return raw
}

func parseDayLabel(label string) (time.Time, bool) {
	t, err := time.Parse(dayLabelLayout, label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
