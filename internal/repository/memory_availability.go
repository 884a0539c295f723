package repository

import (
	"context"
	"time"

	"github.com/neonbook/booking-system/internal/domain"
)

const (
	performanceTime = "19:30"
	performanceLead = 3 // days until the next performance
)

var offeredSlots = []string{"10:00", "11:00", "14:00", "15:00", "16:30", "17:30"}

// MemoryAvailabilityRepository serves the fixed reference schedule: the same
// booked-seat set and slot list for every service, with the next performance a
// few days out. The now function is injectable so tests get stable dates.
type MemoryAvailabilityRepository struct {
	now func() time.Time
}

func NewMemoryAvailabilityRepository() *MemoryAvailabilityRepository {
	return &MemoryAvailabilityRepository{now: time.Now}
}

func (m *MemoryAvailabilityRepository) GetSchedule(ctx context.Context, serviceID int) (*domain.Schedule, error) {
	if serviceID < 1 {
		return nil, domain.ErrRecordNotFound
	}

	year, month, day := m.now().AddDate(0, 0, performanceLead).Date()

	return &domain.Schedule{
		Date:        time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Time:        performanceTime,
		BookedSeats: domain.NewSeatSet("A3", "B5", "C2", "F8", "F9"),
		Slots:       append([]string(nil), offeredSlots...),
	}, nil
}
