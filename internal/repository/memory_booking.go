package repository

import (
	"context"
	"sync"
	"time"

	"github.com/neonbook/booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

// MemoryBookingRepository is an append-only in-memory booking store, seeded
// with the reference history so the dashboard has data on boot.
type MemoryBookingRepository struct {
	mu      sync.RWMutex
	records []domain.BookingRecord
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		records: []domain.BookingRecord{
			{
				Ref:         "BK-1A2B3C",
				ServiceID:   1,
				ServiceName: "Cyberpunk: The Musical",
				Date:        time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
				Time:        "19:30",
				Seats:       []domain.SeatID{"C4", "C5"},
				Status:      domain.BookingUpcoming,
				TotalPrice:  decimal.NewFromInt(150),
			},
			{
				Ref:         "BK-4D5E6F",
				ServiceID:   2,
				ServiceName: "Holistic Spa Session",
				Date:        time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
				Time:        "14:00",
				Status:      domain.BookingCompleted,
				TotalPrice:  decimal.NewFromInt(150),
			},
			{
				Ref:         "BK-7G8H9I",
				ServiceID:   3,
				ServiceName: "VR Escape Room: Mars",
				Date:        time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
				Time:        "16:00",
				Status:      domain.BookingCompleted,
				TotalPrice:  decimal.NewFromInt(45),
			},
			{
				Ref:         "BK-2J4K6M",
				ServiceID:   4,
				ServiceName: "Interstellar Movie Premiere",
				Date:        time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
				Time:        "19:30",
				Seats:       []domain.SeatID{"D6", "D7"},
				Status:      domain.BookingCancelled,
				TotalPrice:  decimal.NewFromInt(50),
			},
		},
	}
}

func (m *MemoryBookingRepository) GetAll(ctx context.Context) ([]domain.BookingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]domain.BookingRecord, len(m.records))
	copy(records, m.records)

	return records, nil
}

func (m *MemoryBookingRepository) GetByRef(ctx context.Context, ref string) (*domain.BookingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.records {
		if r.Ref == ref {
			record := r
			return &record, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (m *MemoryBookingRepository) Create(ctx context.Context, record domain.BookingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, record)

	return nil
}
