package mocks

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
)

type MockReviewRepo struct {
	domain.ReviewRepository
	GetAllFunc func(ctx context.Context) ([]domain.Review, error)
	CreateFunc func(ctx context.Context, review *domain.Review) error
}

func (m *MockReviewRepo) GetAll(ctx context.Context) ([]domain.Review, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.CreateFunc(ctx, review)
}
