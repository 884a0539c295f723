package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsReport is the static dataset behind the admin dashboard. No real
// aggregation happens anywhere in this system.
type AnalyticsReport struct {
	TotalBookings  int
	OccupancyRate  int
	TotalRevenue   decimal.Decimal
	MonthlyRevenue []RevenuePoint
	SeatOccupancy  []OccupancyPoint
}

type RevenuePoint struct {
	Month   string
	Revenue decimal.Decimal
}

type OccupancyPoint struct {
	Service   string
	Occupancy int
}

type AnalyticsRepository interface {
	GetReport(ctx context.Context) (*AnalyticsReport, error)
}
