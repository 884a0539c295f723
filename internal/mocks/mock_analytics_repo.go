package mocks

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
)

type MockAnalyticsRepo struct {
	domain.AnalyticsRepository
	GetReportFunc func(ctx context.Context) (*domain.AnalyticsReport, error)
}

func (m *MockAnalyticsRepo) GetReport(ctx context.Context) (*domain.AnalyticsReport, error) {
	return m.GetReportFunc(ctx)
}
