package repository

import (
	"context"

	"github.com/neonbook/booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

// MemoryServiceRepository holds the demo catalog. The catalog is immutable
// after construction, so reads need no locking.
type MemoryServiceRepository struct {
	services []domain.Service
}

func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{
		services: []domain.Service{
			{
				ID:           1,
				Name:         "Cyberpunk: The Musical",
				Kind:         domain.SeatBased,
				Description:  "A neon-drenched musical adventure in a dystopian future.",
				Price:        decimal.NewFromInt(75),
				Location:     "Galaxy Theater",
				Category:     "Entertainment",
				ImageUrl:     "https://picsum.photos/seed/musical/600/400",
				AvgRating:    4.8,
				TotalRatings: 258,
			},
			{
				ID:           2,
				Name:         "Holistic Spa Session",
				Kind:         domain.SlotBased,
				Description:  "Relax and rejuvenate with our signature holistic treatments.",
				Duration:     90,
				Price:        decimal.NewFromInt(150),
				Location:     "Serenity Spa",
				Category:     "Wellness",
				ImageUrl:     "https://picsum.photos/seed/spa/600/400",
				AvgRating:    4.9,
				TotalRatings: 172,
			},
			{
				ID:           3,
				Name:         "VR Escape Room: Mars",
				Kind:         domain.SlotBased,
				Description:  "Team up to solve puzzles and escape the red planet.",
				Duration:     60,
				Price:        decimal.NewFromInt(45),
				Location:     "VirtuVerse Arena",
				Category:     "Gaming",
				ImageUrl:     "https://picsum.photos/seed/vr/600/400",
				AvgRating:    4.7,
				TotalRatings: 312,
			},
			{
				ID:           4,
				Name:         "Interstellar Movie Premiere",
				Kind:         domain.SeatBased,
				Description:  "Experience the epic journey through space on our IMAX screen.",
				Price:        decimal.NewFromInt(25),
				Location:     "Cosmic Cinema",
				Category:     "Entertainment",
				ImageUrl:     "https://picsum.photos/seed/movie/600/400",
				AvgRating:    5.0,
				TotalRatings: 540,
			},
		},
	}
}

func (m *MemoryServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	services := make([]domain.Service, len(m.services))
	copy(services, m.services)

	return services, nil
}

func (m *MemoryServiceRepository) GetById(ctx context.Context, id int) (*domain.Service, error) {
	for _, s := range m.services {
		if s.ID == id {
			service := s
			return &service, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

// Categories returns the sentinel "All" followed by the distinct categories in
// catalog order.
func (m *MemoryServiceRepository) Categories(ctx context.Context) ([]string, error) {
	categories := []string{domain.CategoryAll}
	seen := make(map[string]bool)

	for _, s := range m.services {
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}

	return categories, nil
}
