package mocks

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	GetAllFunc   func(ctx context.Context) ([]domain.BookingRecord, error)
	GetByRefFunc func(ctx context.Context, ref string) (*domain.BookingRecord, error)
	CreateFunc   func(ctx context.Context, record domain.BookingRecord) error
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]domain.BookingRecord, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockBookingRepo) GetByRef(ctx context.Context, ref string) (*domain.BookingRecord, error) {
	return m.GetByRefFunc(ctx, ref)
}

func (m *MockBookingRepo) Create(ctx context.Context, record domain.BookingRecord) error {
	return m.CreateFunc(ctx, record)
}
