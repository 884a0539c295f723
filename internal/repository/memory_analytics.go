package repository

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

// MemoryAnalyticsRepository serves the static admin report. No aggregation
// happens here; the numbers are fixed demo data.
type MemoryAnalyticsRepository struct {
	report domain.AnalyticsReport
}

func NewMemoryAnalyticsRepository() *MemoryAnalyticsRepository {
	return &MemoryAnalyticsRepository{
		report: domain.AnalyticsReport{
			TotalBookings: 384,
			OccupancyRate: 78,
			TotalRevenue:  decimal.NewFromInt(45890),
			MonthlyRevenue: []domain.RevenuePoint{
				{Month: "Jan", Revenue: decimal.NewFromInt(3200)},
				{Month: "Feb", Revenue: decimal.NewFromInt(4500)},
				{Month: "Mar", Revenue: decimal.NewFromInt(4200)},
				{Month: "Apr", Revenue: decimal.NewFromInt(5100)},
				{Month: "May", Revenue: decimal.NewFromInt(6200)},
				{Month: "Jun", Revenue: decimal.NewFromInt(7800)},
				{Month: "Jul", Revenue: decimal.NewFromInt(7100)},
			},
			SeatOccupancy: []domain.OccupancyPoint{
				{Service: "Cyberpunk", Occupancy: 85},
				{Service: "Interstellar", Occupancy: 92},
			},
		},
	}
}

func (m *MemoryAnalyticsRepository) GetReport(ctx context.Context) (*domain.AnalyticsReport, error) {
	report := m.report
	return &report, nil
}
