package repository

import (
	"context"
	"sync"
	"time"

	"github.com/neonbook/booking-system/internal/domain"
)

type MemoryReviewRepository struct {
	mu      sync.RWMutex
	nextID  int
	reviews []domain.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{
		nextID: 4,
		reviews: []domain.Review{
			{
				ID:          1,
				ServiceID:   2,
				ServiceName: "Holistic Spa Session",
				UserName:    "Jane Doe",
				Rating:      5,
				Comment:     "Absolutely transformative experience. I felt so refreshed afterwards!",
				Date:        time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          2,
				ServiceID:   3,
				ServiceName: "VR Escape Room: Mars",
				UserName:    "John Smith",
				Rating:      4,
				Comment:     "Great fun with friends, the puzzles were challenging but not impossible.",
				Date:        time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          3,
				ServiceID:   1,
				ServiceName: "Cyberpunk: The Musical",
				UserName:    "Alex Ray",
				Rating:      5,
				Comment:     "The visuals and music were out of this world. A must-see!",
				Date:        time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func (m *MemoryReviewRepository) GetAll(ctx context.Context) ([]domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reviews := make([]domain.Review, len(m.reviews))
	copy(reviews, m.reviews)

	return reviews, nil
}

// Create assigns the review its ID and appends it to the collection.
func (m *MemoryReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	review.ID = m.nextID
	m.nextID++
	m.reviews = append(m.reviews, *review)

	return nil
}
