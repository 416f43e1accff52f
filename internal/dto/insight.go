package dto

import "time"

type InsightResponse struct {
	TraceID   string    `json:"traceId"`
	Insights  string    `json:"insights"`
	Timestamp time.Time `json:"timestamp"`
}
