package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neonbook/booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMemoryBookingRepositoryCreateAndGetByRef(t *testing.T) {
	repo := NewMemoryBookingRepository()

	record := domain.BookingRecord{
		Ref:         "BK-TEST42",
		ServiceID:   1,
		ServiceName: "Cyberpunk: The Musical",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:        "19:30",
		Seats:       []domain.SeatID{"D1"},
		Status:      domain.BookingUpcoming,
		TotalPrice:  decimal.NewFromInt(75),
	}

	err := repo.Create(context.Background(), record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByRef(context.Background(), "BK-TEST42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ServiceName != record.ServiceName {
		t.Errorf("service name = %q, want %q", got.ServiceName, record.ServiceName)
	}

	if !got.TotalPrice.Equal(record.TotalPrice) {
		t.Errorf("total price = %s, want %s", got.TotalPrice, record.TotalPrice)
	}

	_, err = repo.GetByRef(context.Background(), "BK-MISSIN")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("error = %v, want %v", err, domain.ErrRecordNotFound)
	}
}

func TestMemoryBookingRepositorySeedPartitionsCleanly(t *testing.T) {
	repo := NewMemoryBookingRepository()

	records, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := domain.PartitionBookings(records)
	if err != nil {
		t.Fatalf("seed data does not partition: %v", err)
	}

	if len(history.Upcoming)+len(history.Past) != len(records) {
		t.Errorf("partition lost records: %d + %d != %d",
			len(history.Upcoming), len(history.Past), len(records))
	}

	if len(history.Upcoming) != 1 {
		t.Errorf("got %d upcoming bookings, want 1", len(history.Upcoming))
	}
}
