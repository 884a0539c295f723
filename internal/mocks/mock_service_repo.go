package mocks

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
)

type MockServiceRepo struct {
	domain.ServiceRepository
	GetAllFunc     func(ctx context.Context) ([]domain.Service, error)
	GetByIdFunc    func(ctx context.Context, id int) (*domain.Service, error)
	CategoriesFunc func(ctx context.Context) ([]string, error)
}

func (m *MockServiceRepo) GetAll(ctx context.Context) ([]domain.Service, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockServiceRepo) GetById(ctx context.Context, id int) (*domain.Service, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockServiceRepo) Categories(ctx context.Context) ([]string, error) {
	return m.CategoriesFunc(ctx)
}
