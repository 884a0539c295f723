package mocks

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
)

type MockAvailabilityRepo struct {
	domain.AvailabilityRepository
	GetScheduleFunc func(ctx context.Context, serviceID int) (*domain.Schedule, error)
}

func (m *MockAvailabilityRepo) GetSchedule(ctx context.Context, serviceID int) (*domain.Schedule, error) {
	return m.GetScheduleFunc(ctx, serviceID)
}
